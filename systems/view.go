package systems

import (
	"math"

	"github.com/automoto/tilehop/components"
	"github.com/automoto/tilehop/shared/geom"
	"github.com/automoto/tilehop/shared/leveldata"
	"github.com/automoto/tilehop/shared/sim"
	"github.com/yohamta/donburi/ecs"
)

// toScreen maps the bottom-left-origin world box b to the top-left corner of
// its screen rectangle. World y grows upward, screen y grows downward.
func toScreen(view *sim.Camera, b geom.Box) (x, y float64) {
	return b.X() - view.X, view.Y + view.H - b.Top()
}

// pixel snaps a screen coordinate so tiles never straddle a pixel.
func pixel(v float64) float64 {
	return math.Floor(v + 0.5)
}

// viewAndLevel returns the camera view and the current level, or false
// before the scene has created them.
func viewAndLevel(e *ecs.ECS) (*sim.Camera, *leveldata.TileGrid, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return nil, nil, false
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return nil, nil, false
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return nil, nil, false
	}
	return components.Camera.Get(cameraEntry).View, level, true
}
