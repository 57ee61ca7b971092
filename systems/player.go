package systems

import (
	"log"

	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/shared/sim"
	"github.com/automoto/tilehop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer steps every character against the collision world built on
// the previous frame.
func UpdatePlayer(ecs *ecs.ECS) {
	worldEntry, ok := components.CollisionWorld.First(ecs.World)
	if !ok {
		return
	}
	world := components.CollisionWorld.Get(worldEntry).World
	input := getOrCreateInput(ecs)
	in := ControllerInput(input)

	if GetAction(input, cfg.ActionRestart).JustPressed {
		respawn(ecs)
	}

	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		char := components.Character.Get(entry)
		char.Input = in
		char.Resolution = char.Controller.Step(world, in)
	})
}

// respawn puts the player back on its spawn point, snaps the camera onto it
// and rebuilds the obstacles there so the first step has ground to land on.
func respawn(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	char := components.Character.Get(playerEntry)
	char.Controller.Teleport(char.SpawnX, char.SpawnY)

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	old := components.Camera.Get(cameraEntry).View
	components.Camera.Get(cameraEntry).View = sim.NewCamera(old.W, old.H, old.ZoneX, old.ZoneY, old.EaseFrames,
		sim.BodyBox(char.Controller.Body), level.PixelWidth(), level.PixelHeight())

	if err := RebuildCollisionWorld(e); err != nil {
		log.Printf("respawn: %v", err)
	}
	log.Printf("respawned at (%v,%v)", char.SpawnX, char.SpawnY)
}

// RequestedLevel returns the level after the current one, wrapping around,
// on the frame the next-level action goes down.
func RequestedLevel(ecs *ecs.ECS) (string, bool) {
	input := getOrCreateInput(ecs)
	if !GetAction(input, cfg.ActionNextLevel).JustPressed {
		return "", false
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return "", false
	}
	level := components.Level.Get(levelEntry)
	return NextLevelName(level.Names, level.LevelName)
}

// NextLevelName returns the name following current in names, wrapping
// around. It reports false when there is nowhere else to go.
func NextLevelName(names []string, current string) (string, bool) {
	if len(names) < 2 {
		return "", false
	}
	for i, n := range names {
		if n == current {
			return names[(i+1)%len(names)], true
		}
	}
	return names[0], true
}
