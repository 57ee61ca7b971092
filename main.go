package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/tilehop/assets"
	"github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/fonts"
	"github.com/automoto/tilehop/scenes"
	"github.com/automoto/tilehop/shared/tuning"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(watcher *tuning.Watcher) *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPlatformerScene(g, config.World.Level, watcher)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	level := flag.String("level", "", "Level to load (file stem under assets/levels, empty = first)")
	tuningFile := flag.String("tuning", "", "YAML movement tuning file, reloaded when it changes")
	debug := flag.Bool("debug", false, "Start with the debug overlay on")
	scale := flag.Int("scale", config.C.Scale, "Window scale factor")
	flag.Parse()

	config.World.Level = *level
	config.Debug.ShowOverlay = *debug
	config.Debug.TuningFile = *tuningFile
	if *scale > 0 {
		config.C.Scale = *scale
	}

	// Fail before opening a window if the level cannot be found.
	levels, names, err := assets.NewLevelLoader().LoadLevels()
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}
	if *level != "" {
		if _, ok := levels[*level]; !ok {
			log.Fatalf("Unknown level %q, have %v", *level, names)
		}
	}

	var watcher *tuning.Watcher
	if *tuningFile != "" {
		t, err := tuning.LoadFile(*tuningFile)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		config.Player = t
		watcher, err = tuning.NewWatcher(*tuningFile)
		if err != nil {
			log.Printf("Warning: tuning file will not be reloaded: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	ebiten.SetWindowSize(config.C.Width*config.C.Scale, config.C.Height*config.C.Scale)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(watcher)); err != nil {
		log.Fatal(err)
	}
}
