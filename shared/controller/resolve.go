package controller

import (
	"github.com/automoto/tilehop/shared/collision"
)

// Resolution records one frame's wall check: every side's sweep result and
// which sides applied a correction.
type Resolution struct {
	Contacts [numSides]collision.Contact
	Resolved [numSides]bool
	MinStep  int
}

// Any reports whether any correction was applied.
func (r Resolution) Any() bool {
	for _, ok := range r.Resolved {
		if ok {
			return true
		}
	}
	return false
}

// Hit reports whether side s applied a correction.
func (r Resolution) Hit(s Side) bool {
	return r.Resolved[s]
}

// ResolveWalls sweeps the four side probes from where they were last placed
// along the body's velocity. Every probe whose contact came at the earliest
// step corrects the body; later contacts wait for the next frame. The probes
// are then moved to the body's final position.
func (c *Controller) ResolveWalls(world collision.ObstacleSet) Resolution {
	b := &c.Body
	res := Resolution{MinStep: -1}

	for s := range res.Contacts {
		res.Contacts[s] = collision.Sweep(c.probes.Sides[s], b.VX, b.VY, world)
		if hit := res.Contacts[s]; hit.Hit && (res.MinStep < 0 || hit.Step < res.MinStep) {
			res.MinStep = hit.Step
		}
	}
	if res.MinStep < 0 {
		c.relocateProbes()
		return res
	}

	nudge := 0.0
	if b.Facing == FacingLeft {
		nudge = FacingNudge
	}
	for s, hit := range res.Contacts {
		if !hit.Hit || hit.Step != res.MinStep {
			continue
		}
		obs := world.Box(hit.Index)
		switch Side(s) {
		case SideTop:
			l := Layout(SideTop, b.Facing)
			b.Y = obs.Y() - (l.OffsetY + l.H)
			b.VY = 0
		case SideBottom:
			l := Layout(SideBottom, b.Facing)
			b.Y = obs.Top() - l.OffsetY
			b.VY = 0
		case SideRight:
			b.X = obs.X() - RightWallInset - nudge
			b.VX = 0
		case SideLeft:
			b.X = obs.X() + LeftWallInset - nudge
			b.VX = 0
		}
		res.Resolved[s] = true
	}

	c.relocateProbes()
	return res
}
