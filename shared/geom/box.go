// Package geom holds the axis-aligned box primitive shared by the collision
// world, the sweep and the character probes. It has no dependencies on
// ebitengine so it can be used headless.
package geom

import (
	"errors"
	"fmt"

	dmath "github.com/yohamta/donburi/features/math"
)

// ErrNegativeSize is returned when a box is given a negative width or height.
var ErrNegativeSize = errors.New("geom: negative box size")

// Box is an axis-aligned rectangle anchored at its bottom-left corner, with y
// growing upward. The corners are derived from the position and size on every
// relocation and are never set independently.
type Box struct {
	x, y, w, h float64

	bottomLeft  dmath.Vec2
	bottomRight dmath.Vec2
	topLeft     dmath.Vec2
	topRight    dmath.Vec2
}

// NewBox builds a box at (x, y) with the given size.
func NewBox(x, y, w, h float64) (Box, error) {
	var b Box
	if err := b.Relocate(x, y, w, h); err != nil {
		return Box{}, err
	}
	return b, nil
}

// MustBox is NewBox for sizes known to be valid at compile time. It panics on
// a negative size.
func MustBox(x, y, w, h float64) Box {
	b, err := NewBox(x, y, w, h)
	if err != nil {
		panic(err)
	}
	return b
}

// Relocate moves and resizes the box and recomputes its corners. On error the
// box is left unchanged.
func (b *Box) Relocate(x, y, w, h float64) error {
	if w < 0 || h < 0 {
		return fmt.Errorf("relocate to %vx%v: %w", w, h, ErrNegativeSize)
	}
	b.x, b.y, b.w, b.h = x, y, w, h
	b.bottomLeft = dmath.Vec2{X: x, Y: y}
	b.bottomRight = dmath.Vec2{X: x + w, Y: y}
	b.topLeft = dmath.Vec2{X: x, Y: y + h}
	b.topRight = dmath.Vec2{X: x + w, Y: y + h}
	return nil
}

// Translate returns a copy of the box moved by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	moved := b
	// Size is unchanged, so Relocate cannot fail here.
	_ = moved.Relocate(b.x+dx, b.y+dy, b.w, b.h)
	return moved
}

// Intersects reports whether the two boxes overlap. Touching edges count as
// an intersection.
func (b Box) Intersects(other Box) bool {
	return b.x <= other.x+other.w && other.x <= b.x+b.w &&
		b.y <= other.y+other.h && other.y <= b.y+b.h
}

// Union returns the smallest box containing both boxes.
func (b Box) Union(other Box) Box {
	minX := min(b.x, other.x)
	minY := min(b.y, other.y)
	maxX := max(b.x+b.w, other.x+other.w)
	maxY := max(b.y+b.h, other.y+other.h)
	return MustBox(minX, minY, maxX-minX, maxY-minY)
}

func (b Box) X() float64 { return b.x }
func (b Box) Y() float64 { return b.y }
func (b Box) W() float64 { return b.w }
func (b Box) H() float64 { return b.h }

func (b Box) Right() float64 { return b.x + b.w }
func (b Box) Top() float64   { return b.y + b.h }

func (b Box) BottomLeft() dmath.Vec2  { return b.bottomLeft }
func (b Box) BottomRight() dmath.Vec2 { return b.bottomRight }
func (b Box) TopLeft() dmath.Vec2     { return b.topLeft }
func (b Box) TopRight() dmath.Vec2    { return b.topRight }

func (b Box) String() string {
	return fmt.Sprintf("Box{%g,%g %gx%g}", b.x, b.y, b.w, b.h)
}
