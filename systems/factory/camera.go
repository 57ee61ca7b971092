package factory

import (
	"github.com/automoto/tilehop/archetypes"
	"github.com/automoto/tilehop/components"
	"github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/shared/geom"
	"github.com/automoto/tilehop/shared/leveldata"
	"github.com/automoto/tilehop/shared/sim"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns a camera centered on target and clamped to the level.
func CreateCamera(ecs *ecs.ECS, target geom.Box, level *leveldata.TileGrid) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	view := sim.NewCamera(
		float64(config.C.Width), float64(config.C.Height),
		config.Camera.PushZoneX, config.Camera.PushZoneY, config.Camera.EaseFrames,
		target, level.PixelWidth(), level.PixelHeight(),
	)
	components.Camera.Set(camera, &components.CameraData{View: view})
	return camera
}
