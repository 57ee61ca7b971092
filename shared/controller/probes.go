package controller

import (
	"math"

	"github.com/automoto/tilehop/shared/geom"
)

// Body dimensions in pixels.
const (
	BodyWidth  = 16
	BodyHeight = 16
)

// Wall-contact corrections. They are measured from the obstacle edge to the
// body's x and are tied to the side probe layouts below: a right probe whose
// far edge sits 11px from the body origin, a left probe whose near edge sits
// 12px inside it plus 1px clearance. The facing-left layout is shifted one
// pixel right and rounded up, so facing left moves both results 2px left.
const (
	RightWallInset = 11
	LeftWallInset  = 13
	FacingNudge    = 2
)

// Facing is the direction the body looks at. It shifts the probe layout and
// flips the sprite.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Side names one of the four directional probes, in sweep order.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
	numSides
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	}
	return "unknown"
}

// ProbeLayout is a probe's offset from the body origin and its size.
type ProbeLayout struct {
	OffsetX, OffsetY float64
	W, H             float64
}

// place returns the probe box for a body at (x, y). Facing right floors the
// probe x, facing left rounds it up.
func (l ProbeLayout) place(x, y float64, f Facing) geom.Box {
	px := math.Floor(x + l.OffsetX)
	if f == FacingLeft {
		px = math.Ceil(x + l.OffsetX)
	}
	return geom.MustBox(px, y+l.OffsetY, l.W, l.H)
}

type layoutSet struct {
	sides  [numSides]ProbeLayout
	ground ProbeLayout
}

var layouts = [2]layoutSet{
	FacingRight: {
		sides: [numSides]ProbeLayout{
			SideTop:    {OffsetX: 7, OffsetY: 6, W: 1, H: 10},
			SideRight:  {OffsetX: 8, OffsetY: 4, W: 3, H: 8},
			SideBottom: {OffsetX: 7, OffsetY: 0, W: 1, H: 4},
			SideLeft:   {OffsetX: 4, OffsetY: 4, W: 3, H: 8},
		},
		ground: ProbeLayout{OffsetX: 5, OffsetY: -1, W: 5, H: 2},
	},
	FacingLeft: {
		sides: [numSides]ProbeLayout{
			SideTop:    {OffsetX: 8, OffsetY: 6, W: 1, H: 10},
			SideRight:  {OffsetX: 9, OffsetY: 4, W: 3, H: 8},
			SideBottom: {OffsetX: 8, OffsetY: 0, W: 1, H: 4},
			SideLeft:   {OffsetX: 5, OffsetY: 4, W: 3, H: 8},
		},
		ground: ProbeLayout{OffsetX: 6, OffsetY: -1, W: 5, H: 2},
	},
}

// Layout returns the layout of a side probe for the given facing.
func Layout(s Side, f Facing) ProbeLayout {
	return layouts[f].sides[s]
}

// Probes is the set of collision boxes attached to a body.
type Probes struct {
	Sides  [numSides]geom.Box
	Ground geom.Box
}

func (p *Probes) Top() geom.Box    { return p.Sides[SideTop] }
func (p *Probes) Right() geom.Box  { return p.Sides[SideRight] }
func (p *Probes) Bottom() geom.Box { return p.Sides[SideBottom] }
func (p *Probes) Left() geom.Box   { return p.Sides[SideLeft] }

// relocate moves the side probes in place and rebuilds the ground sensor.
func (p *Probes) relocate(x, y float64, f Facing) {
	for s := range p.Sides {
		l := layouts[f].sides[s]
		px := l.place(x, y, f).X()
		// Sizes come from the static layouts, so Relocate cannot fail.
		_ = p.Sides[s].Relocate(px, y+l.OffsetY, l.W, l.H)
	}
	p.Ground = layouts[f].ground.place(x, y, f)
}

func newProbes(x, y float64, f Facing) Probes {
	var p Probes
	p.relocate(x, y, f)
	return p
}
