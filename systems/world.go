package systems

import (
	"log"

	"github.com/automoto/tilehop/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisionWorld rebuilds the obstacle set for the camera's current
// window. It runs last so the next frame's player step sees the new view.
func UpdateCollisionWorld(e *ecs.ECS) {
	if err := RebuildCollisionWorld(e); err != nil {
		log.Printf("collision world: %v", err)
	}
}

// RebuildCollisionWorld replaces the obstacle set with the solid tiles around
// the camera.
func RebuildCollisionWorld(e *ecs.ECS) error {
	worldEntry, ok := components.CollisionWorld.First(e.World)
	if !ok {
		return nil
	}
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return nil
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	view := components.Camera.Get(cameraEntry).View
	world := components.CollisionWorld.Get(worldEntry).World

	return world.Rebuild(level, view.Window(level.TileWidth))
}
