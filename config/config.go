package config

import (
	"image/color"

	"github.com/automoto/tilehop/shared/controller"
	"github.com/automoto/tilehop/shared/sim"
)

// Config holds general game configuration
type Config struct {
	Width  int // logical screen size
	Height int
	Scale  int // window scale factor
	Title  string
}

// WorldConfig describes the level grid
type WorldConfig struct {
	TileSize  int
	SolidTile int    // global tile ID treated as solid
	LayerName string // TMX tile layer holding the level geometry
	LevelDir  string
	Level     string // level stem to load, "" for the first one
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	PushZoneX  float64 // width of the left/right push zones in pixels
	PushZoneY  float64 // height of the top/bottom push zones in pixels
	EaseFrames float64 // frames a scroll takes to settle
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowOverlay      bool    // draw obstacle, probe and camera boxes
	FallGravityStep  float64 // change per key press
	TuningFile       string  // YAML tuning file to watch, "" disables reloading
	LogFallGravity   bool
	OverlayTileColor color.RGBA
	OverlayProbe     color.RGBA
	OverlayGround    color.RGBA
	OverlayBody      color.RGBA
	OverlayCamera    color.RGBA
	OverlayContact   color.RGBA
}

// Global configuration instances
var C *Config
var Player controller.Tuning
var World WorldConfig
var Camera CameraConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green      = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightBlue  = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Magenta    = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Sky        = color.RGBA{R: 24, G: 20, B: 37, A: 255}
	HUDOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 160}
)

func init() {
	C = &Config{
		Width:  192,
		Height: 128,
		Scale:  4,
		Title:  "tilehop",
	}

	Player = controller.DefaultTuning()

	World = WorldConfig{
		TileSize:  16,
		SolidTile: 113,
		LayerName: "ground",
		LevelDir:  "levels",
	}

	Camera = CameraConfig{
		PushZoneX:  64,
		PushZoneY:  32,
		EaseFrames: 8,
	}

	Debug = DebugConfig{
		FallGravityStep:  0.01,
		LogFallGravity:   true,
		OverlayTileColor: LightBlue,
		OverlayProbe:     Yellow,
		OverlayGround:    Green,
		OverlayBody:      White,
		OverlayCamera:    Magenta,
		OverlayContact:   Red,
	}
}

// Sim returns the simulation constants for the current configuration.
func Sim() sim.Config {
	return sim.Config{
		SolidTile:  World.SolidTile,
		ViewWidth:  float64(C.Width),
		ViewHeight: float64(C.Height),
		PushZoneX:  Camera.PushZoneX,
		PushZoneY:  Camera.PushZoneY,
		EaseFrames: Camera.EaseFrames,
		Tuning:     Player,
	}
}
