package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/tilehop/assets"
	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/shared/sim"
	"github.com/automoto/tilehop/shared/tuning"
	"github.com/automoto/tilehop/systems"
	"github.com/automoto/tilehop/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelName    string
	watcher      *tuning.Watcher
	once         sync.Once
}

// NewPlatformerScene creates a scene for the named level. An empty name
// loads the first level. watcher may be nil.
func NewPlatformerScene(sc SceneChanger, levelName string, watcher *tuning.Watcher) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, levelName: levelName, watcher: watcher}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if next, ok := systems.RequestedLevel(ps.ecs); ok {
		ps.sceneChanger.ChangeScene(NewPlatformerScene(ps.sceneChanger, next, ps.watcher))
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	if err := ps.build(); err != nil {
		panic(err)
	}
}

// build wires the systems in frame order: the player steps against last
// frame's obstacles, the camera follows, then the obstacle set is rebuilt
// for the new view.
func (ps *PlatformerScene) build() error {
	assets.PreloadSprites()

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateTuning)
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateAnimations)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateCollisionWorld)

	ecs.AddRenderer(cfg.LayerTiles, systems.DrawLevel)
	ecs.AddRenderer(cfg.LayerSprites, systems.DrawPlayer)
	ecs.AddRenderer(cfg.LayerDebug, systems.DrawDebug)
	ecs.AddRenderer(cfg.LayerHUD, systems.DrawHUD)

	ps.ecs = ecs

	factory.CreateInput(ps.ecs)
	factory.CreateDebug(ps.ecs, ps.watcher)

	levelEntry, err := factory.CreateLevel(ps.ecs, ps.levelName)
	if err != nil {
		return err
	}
	level := components.Level.Get(levelEntry).CurrentLevel

	spawn, ok := level.Spawn()
	if !ok {
		return fmt.Errorf("level %q: %w", level.Name, sim.ErrNoSpawn)
	}
	player, err := factory.CreatePlayer(ps.ecs, spawn.X, spawn.Y)
	if err != nil {
		return err
	}
	body := components.Character.Get(player).Controller.Body

	factory.CreateCamera(ps.ecs, sim.BodyBox(body), level)
	factory.CreateCollisionWorld(ps.ecs)
	return systems.RebuildCollisionWorld(ps.ecs)
}
