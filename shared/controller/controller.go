// Package controller moves a platformer body through a static obstacle set.
// Each step integrates gravity and horizontal input, then sweeps four side
// probes along the velocity and applies the corrections of every probe that
// touched first.
package controller

import (
	"fmt"

	"github.com/automoto/tilehop/shared/collision"
	"github.com/automoto/tilehop/shared/gamemath"
)

// Tuning holds the movement constants of a body.
type Tuning struct {
	TopSpeed      float64 `yaml:"top_speed"`
	Acceleration  float64 `yaml:"acceleration"`   // lerp weight toward top speed
	Deceleration  float64 `yaml:"deceleration"`   // lerp weight toward rest
	SnapThreshold float64 `yaml:"snap_threshold"` // |vx| below this snaps to 0 when idle
	ReverseClamp  float64 `yaml:"reverse_clamp"`  // opposite velocity is clamped to this before turning
	FallGravity   float64 `yaml:"fall_gravity"`
	ApexHeight    float64 `yaml:"apex_height"`
	JumpDuration  float64 `yaml:"jump_duration"` // frames to apex
}

// DefaultTuning returns the tuned movement constants.
func DefaultTuning() Tuning {
	return Tuning{
		TopSpeed:      2.8,
		Acceleration:  0.06,
		Deceleration:  0.2,
		SnapThreshold: 0.1,
		ReverseClamp:  0.1,
		FallGravity:   0.33,
		ApexHeight:    32,
		JumpDuration:  18,
	}
}

// Arc validates the jump parameters and returns the derived arc.
func (t Tuning) Arc() (gamemath.JumpArc, error) {
	return gamemath.NewJumpArc(t.ApexHeight, t.JumpDuration)
}

// Input is one frame of player intent. Left and Right are held states,
// JumpPressed is true only on the frame the jump button went down.
type Input struct {
	Left, Right bool
	JumpPressed bool
}

// State is the grounded state machine's current state.
type State int

const (
	StateGrounded State = iota
	StateRising
	StateFalling
)

func (s State) String() string {
	switch s {
	case StateGrounded:
		return "grounded"
	case StateRising:
		return "rising"
	case StateFalling:
		return "falling"
	}
	return "unknown"
}

// Body is the moving character's kinematic state.
type Body struct {
	X, Y      float64
	VX, VY    float64
	Facing    Facing
	JumpCount int
	Jumping   bool
	Grounded  bool
}

// Controller owns a body and its probes.
type Controller struct {
	Body   Body
	tuning Tuning
	arc    gamemath.JumpArc
	probes Probes
}

// New returns a controller for a body at rest at (x, y), facing right.
func New(x, y float64, t Tuning) (*Controller, error) {
	arc, err := t.Arc()
	if err != nil {
		return nil, fmt.Errorf("controller tuning: %w", err)
	}
	c := &Controller{
		Body:   Body{X: x, Y: y},
		tuning: t,
		arc:    arc,
	}
	c.probes = newProbes(x, y, FacingRight)
	return c, nil
}

// Tuning returns the active tuning.
func (c *Controller) Tuning() Tuning {
	return c.tuning
}

// SetTuning swaps the tuning. An invalid jump arc is rejected and the
// previous tuning stays active.
func (c *Controller) SetTuning(t Tuning) error {
	arc, err := t.Arc()
	if err != nil {
		return fmt.Errorf("controller tuning: %w", err)
	}
	c.tuning, c.arc = t, arc
	return nil
}

// Arc returns the active jump arc.
func (c *Controller) Arc() gamemath.JumpArc {
	return c.arc
}

// Probes returns the body's probes at its current position.
func (c *Controller) Probes() Probes {
	return c.probes
}

// Teleport places the body at (x, y) at rest and relocates its probes.
func (c *Controller) Teleport(x, y float64) {
	c.Body.X, c.Body.Y = x, y
	c.Body.VX, c.Body.VY = 0, 0
	c.Body.JumpCount, c.Body.Jumping, c.Body.Grounded = 0, false, false
	c.relocateProbes()
}

func (c *Controller) relocateProbes() {
	c.probes.relocate(c.Body.X, c.Body.Y, c.Body.Facing)
}

// State reports where the body is in the grounded state machine.
func (c *Controller) State() State {
	switch {
	case c.Body.Grounded:
		return StateGrounded
	case c.Body.VY > 0:
		return StateRising
	}
	return StateFalling
}

// IsGrounded reports whether the ground sensor touches an obstacle. It does
// not change the body.
func (c *Controller) IsGrounded(world collision.ObstacleSet) bool {
	_, ok := collision.FirstIntersecting(world, c.probes.Ground)
	return ok
}

// OnLanding ends any jump in progress.
func (c *Controller) OnLanding() {
	c.Body.JumpCount = 0
	c.Body.Jumping = false
}

// CheckIfGrounded tests the ground sensor and, when it touches, resets the
// jump state in the same call.
func (c *Controller) CheckIfGrounded(world collision.ObstacleSet) bool {
	if !c.IsGrounded(world) {
		return false
	}
	c.OnLanding()
	return true
}

// Step advances the body by one frame.
func (c *Controller) Step(world collision.ObstacleSet, in Input) Resolution {
	b := &c.Body

	if b.Jumping {
		b.JumpCount++
	}
	if b.Grounded {
		b.VY = 0
	} else {
		b.VY -= c.arc.Gravity(b.JumpCount, c.tuning.FallGravity)
	}

	c.steer(in)
	if in.JumpPressed && c.IsGrounded(world) {
		b.Jumping = true
		b.VY = c.arc.JumpSpeed()
	}
	if !in.Left && !in.Right {
		b.VX = gamemath.SnapToZero(b.VX, c.tuning.SnapThreshold)
	}

	b.X += b.VX
	b.Y += b.VY

	res := c.ResolveWalls(world)

	b.Grounded = c.IsGrounded(world)
	if b.Grounded {
		c.OnLanding()
	}
	return res
}

// steer smooths horizontal velocity toward the held direction. Both
// directions held apply both pulls in turn.
func (c *Controller) steer(in Input) {
	b := &c.Body
	t := c.tuning

	if in.Left {
		if b.VX > t.ReverseClamp {
			b.VX = t.ReverseClamp
		}
		b.VX = gamemath.Lerp(b.VX, -t.TopSpeed, t.Acceleration)
		b.Facing = FacingLeft
	}
	if in.Right {
		if b.VX < -t.ReverseClamp {
			b.VX = -t.ReverseClamp
		}
		b.VX = gamemath.Lerp(b.VX, t.TopSpeed, t.Acceleration)
		b.Facing = FacingRight
	}
	if !in.Left && !in.Right {
		b.VX = gamemath.Lerp(b.VX, 0, t.Deceleration)
	}
}
