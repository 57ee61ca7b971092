package gamemath

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidJumpDuration is returned for a jump duration that would divide by
// zero (or run time backwards) in the arc formulas.
var ErrInvalidJumpDuration = errors.New("gamemath: jump duration must be positive")

// JumpArc derives the launch speed and rise gravity that carry a body to
// ApexHeight pixels in Duration frames.
type JumpArc struct {
	ApexHeight float64
	Duration   float64
}

// NewJumpArc validates the arc parameters.
func NewJumpArc(apexHeight, duration float64) (JumpArc, error) {
	if !(duration > 0) {
		return JumpArc{}, fmt.Errorf("duration %v: %w", duration, ErrInvalidJumpDuration)
	}
	return JumpArc{ApexHeight: apexHeight, Duration: duration}, nil
}

// RiseGravity returns 2*apex / duration^2.
func (a JumpArc) RiseGravity() float64 {
	return (2 * a.ApexHeight) / (a.Duration * a.Duration)
}

// JumpSpeed returns 2*apex / duration.
func (a JumpArc) JumpSpeed() float64 {
	return (2 * a.ApexHeight) / a.Duration
}

// Gravity picks the gravity regime for the given jump counter: rise gravity
// while the counter is within the arc duration, fallGravity afterwards.
func (a JumpArc) Gravity(jumpCount int, fallGravity float64) float64 {
	if float64(jumpCount) > a.Duration {
		return fallGravity
	}
	return a.RiseGravity()
}

// Lerp moves origin toward end by weight (0..1).
func Lerp(origin, end, weight float64) float64 {
	return origin*(1-weight) + weight*end
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// SnapToZero returns 0 when |v| is below threshold.
func SnapToZero(v, threshold float64) float64 {
	if math.Abs(v) < threshold {
		return 0
	}
	return v
}
