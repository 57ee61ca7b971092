// Package sim runs the movement core without a window: one controller, the
// collision world rebuilt around a following camera, and a tile grid. The
// game's systems drive the same pieces through donburi; the simulator drives
// them from a script.
package sim

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/tilehop/shared/collision"
	"github.com/automoto/tilehop/shared/controller"
	"github.com/automoto/tilehop/shared/geom"
	"github.com/automoto/tilehop/shared/leveldata"
)

// ErrNoSpawn is returned for a level without a PlayerSpawn object.
var ErrNoSpawn = errors.New("sim: level has no spawn point")

// Config holds the simulation constants.
type Config struct {
	SolidTile  int
	ViewWidth  float64
	ViewHeight float64
	PushZoneX  float64
	PushZoneY  float64
	EaseFrames float64
	Tuning     controller.Tuning
}

// DefaultConfig returns the constants the game runs with.
func DefaultConfig() Config {
	return Config{
		SolidTile:  113,
		ViewWidth:  192,
		ViewHeight: 128,
		PushZoneX:  64,
		PushZoneY:  32,
		EaseFrames: 8,
		Tuning:     controller.DefaultTuning(),
	}
}

// Frame is the state after one simulation step.
type Frame struct {
	Index      int
	Body       controller.Body
	State      controller.State
	Resolution controller.Resolution
	CameraX    float64
	CameraY    float64
	Obstacles  int
}

func (f Frame) String() string {
	b := f.Body
	return fmt.Sprintf("%5d pos=(%.3f,%.3f) vel=(%.3f,%.3f) facing=%v state=%v contacts=%s cam=(%.1f,%.1f) obstacles=%d",
		f.Index, b.X, b.Y, b.VX, b.VY, b.Facing, f.State, sides(f.Resolution), f.CameraX, f.CameraY, f.Obstacles)
}

func sides(r controller.Resolution) string {
	s := ""
	for side := controller.SideTop; side <= controller.SideLeft; side++ {
		if r.Hit(side) {
			if s != "" {
				s += "+"
			}
			s += side.String()
		}
	}
	if s == "" {
		return "-"
	}
	return s
}

// Simulation is a headless game: one level, one player and a camera.
type Simulation struct {
	Level  *leveldata.TileGrid
	Player *controller.Controller
	World  *collision.World
	Camera *Camera

	cfg   Config
	frame int
}

// New places the player at the level's first spawn point and builds the
// collision world around it.
func New(level *leveldata.TileGrid, cfg Config) (*Simulation, error) {
	spawn, ok := level.Spawn()
	if !ok {
		return nil, fmt.Errorf("level %q: %w", level.Name, ErrNoSpawn)
	}
	player, err := controller.New(spawn.X, spawn.Y, cfg.Tuning)
	if err != nil {
		return nil, err
	}

	s := &Simulation{
		Level:  level,
		Player: player,
		World:  collision.NewWorld(cfg.SolidTile),
		cfg:    cfg,
	}
	s.Camera = NewCamera(cfg.ViewWidth, cfg.ViewHeight, cfg.PushZoneX, cfg.PushZoneY, cfg.EaseFrames,
		s.BodyBox(), level.PixelWidth(), level.PixelHeight())
	if err := s.rebuild(); err != nil {
		return nil, err
	}
	if Stuck(s.World, s.Player.Probes()) {
		log.Printf("sim: spawn (%v,%v) overlaps level geometry, the body will stay stuck", spawn.X, spawn.Y)
	}
	return s, nil
}

// BodyBox returns the player's full body rectangle.
func (s *Simulation) BodyBox() geom.Box {
	return BodyBox(s.Player.Body)
}

// BodyBox returns the full body rectangle of b.
func BodyBox(b controller.Body) geom.Box {
	return geom.MustBox(b.X, b.Y, controller.BodyWidth, controller.BodyHeight)
}

// Stuck reports whether an obstacle reaches into the interior of a side
// probe. Touching the edge does not count. The ground sensor is left out: it
// reaches 1px into the floor whenever the body stands.
func Stuck(world collision.ObstacleSet, p controller.Probes) bool {
	for _, b := range p.Sides {
		for _, i := range world.Candidates(b) {
			o := world.Box(i)
			if b.X() < o.Right() && o.X() < b.Right() && b.Y() < o.Top() && o.Y() < b.Top() {
				return true
			}
		}
	}
	return false
}

// Step runs one frame: the player moves against the current window, then the
// camera follows and the window is rebuilt for the next frame.
func (s *Simulation) Step(in controller.Input) Frame {
	res := s.Player.Step(s.World, in)
	s.Camera.Follow(s.BodyBox(), s.Level.PixelWidth(), s.Level.PixelHeight())
	if err := s.rebuild(); err != nil {
		log.Printf("sim: frame %d: %v", s.frame, err)
	}

	f := Frame{
		Index:      s.frame,
		Body:       s.Player.Body,
		State:      s.Player.State(),
		Resolution: res,
		CameraX:    s.Camera.X,
		CameraY:    s.Camera.Y,
		Obstacles:  s.World.Len(),
	}
	s.frame++
	return f
}

// Run steps once per input and returns every frame.
func (s *Simulation) Run(inputs []controller.Input) []Frame {
	frames := make([]Frame, 0, len(inputs))
	for _, in := range inputs {
		frames = append(frames, s.Step(in))
	}
	return frames
}

func (s *Simulation) rebuild() error {
	return s.World.Rebuild(s.Level, s.Camera.Window(s.Level.TileWidth))
}
