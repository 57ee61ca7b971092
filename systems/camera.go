package systems

import (
	"github.com/automoto/tilehop/components"
	"github.com/automoto/tilehop/shared/sim"
	"github.com/automoto/tilehop/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera moves the camera after the player has moved.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	body := components.Character.Get(playerEntry).Controller.Body

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return
	}

	camera.View.Follow(sim.BodyBox(body), level.PixelWidth(), level.PixelHeight())
}
