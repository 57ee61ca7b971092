package collision

import (
	"math"

	"github.com/automoto/tilehop/shared/gamemath"
	"github.com/automoto/tilehop/shared/geom"
)

// ObstacleSet is what the sweep reads: indexed boxes plus a broadphase that
// narrows the indices worth testing against a region.
type ObstacleSet interface {
	Len() int
	Box(i int) geom.Box
	// Candidates returns ascending indices that include every obstacle
	// intersecting region.
	Candidates(region geom.Box) []int
}

// Boxes is an ObstacleSet over a plain slice with no broadphase.
type Boxes []geom.Box

func (b Boxes) Len() int { return len(b) }

func (b Boxes) Box(i int) geom.Box { return b[i] }

func (b Boxes) Candidates(geom.Box) []int {
	all := make([]int, len(b))
	for i := range all {
		all[i] = i
	}
	return all
}

// FirstIntersecting returns the lowest index of a box intersecting probe.
func (b Boxes) FirstIntersecting(probe geom.Box) (int, bool) {
	return FirstIntersecting(b, probe)
}

// Contact is the result of a sweep: either no contact, or the first obstacle
// touched and the step at which it was touched.
type Contact struct {
	Hit   bool
	Index int
	Step  int
}

// NoContact is the sweep result when nothing is touched.
var NoContact = Contact{Index: -1}

// Sweep steps probe along (vx, vy) one unit at a time and reports the first
// obstacle it touches. Each axis advances by its sign until its own budget of
// ceil(|v|) steps is spent, so diagonal motion samples every integer point
// of the longer axis without overshooting the shorter one. The start
// position itself is never tested.
func Sweep(probe geom.Box, vx, vy float64, obstacles ObstacleSet) Contact {
	if !finite(vx) || !finite(vy) {
		return NoContact
	}

	budgetX := int(math.Ceil(math.Abs(vx)))
	budgetY := int(math.Ceil(math.Abs(vy)))
	steps := max(budgetX, budgetY)
	if steps == 0 {
		return NoContact
	}

	dirX, dirY := gamemath.Sign(vx), gamemath.Sign(vy)
	end := probe.Translate(dirX*float64(budgetX), dirY*float64(budgetY))
	candidates := obstacles.Candidates(probe.Union(end))
	if len(candidates) == 0 {
		return NoContact
	}

	x, y := probe.X(), probe.Y()
	moving := probe
	for step := 1; step <= steps; step++ {
		if step <= budgetX {
			x += dirX
		}
		if step <= budgetY {
			y += dirY
		}
		// Size is the probe's own, so Relocate cannot fail.
		_ = moving.Relocate(x, y, probe.W(), probe.H())

		for _, i := range candidates {
			if moving.Intersects(obstacles.Box(i)) {
				return Contact{Hit: true, Index: i, Step: step}
			}
		}
	}
	return NoContact
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
