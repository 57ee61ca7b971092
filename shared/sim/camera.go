package sim

import (
	"math"

	"github.com/automoto/tilehop/shared/collision"
	"github.com/automoto/tilehop/shared/geom"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// retargetEpsilon is how far a push target has to move before the running
// tween is replaced.
const retargetEpsilon = 0.01

// Camera is the view rectangle in world space. It scrolls only when the
// followed box enters a push zone at an edge of the view, easing toward the
// position that puts the box back on the zone boundary.
type Camera struct {
	X, Y         float64
	W, H         float64
	ZoneX, ZoneY float64
	EaseFrames   float64

	targetX, targetY float64
	tweenX, tweenY   *gween.Tween
}

// NewCamera returns a camera of the given size centered on box, clamped to
// the map.
func NewCamera(w, h, zoneX, zoneY, easeFrames float64, box geom.Box, mapW, mapH float64) *Camera {
	c := &Camera{W: w, H: h, ZoneX: zoneX, ZoneY: zoneY, EaseFrames: easeFrames}
	c.X = clampView(box.X()+box.W()/2-w/2, w, mapW)
	c.Y = clampView(box.Y()+box.H()/2-h/2, h, mapH)
	c.targetX, c.targetY = c.X, c.Y
	return c
}

// Follow advances the camera one frame toward keeping box out of the push
// zones.
func (c *Camera) Follow(box geom.Box, mapW, mapH float64) {
	// Zones are measured against where the camera is heading, so a view that
	// is still easing does not stop short.
	tx := clampView(pushTarget(c.targetX, c.W, c.ZoneX, box.X(), box.Right()), c.W, mapW)
	ty := clampView(pushTarget(c.targetY, c.H, c.ZoneY, box.Y(), box.Top()), c.H, mapH)

	if math.Abs(tx-c.targetX) > retargetEpsilon {
		c.targetX = tx
		c.tweenX = c.tween(c.X, tx)
	}
	if math.Abs(ty-c.targetY) > retargetEpsilon {
		c.targetY = ty
		c.tweenY = c.tween(c.Y, ty)
	}

	c.X = step(c.tweenX, c.X)
	c.Y = step(c.tweenY, c.Y)
}

func (c *Camera) tween(from, to float64) *gween.Tween {
	if c.EaseFrames <= 0 {
		return gween.New(float32(from), float32(to), 1, ease.Linear)
	}
	return gween.New(float32(from), float32(to), float32(c.EaseFrames), ease.OutQuad)
}

// step advances a tween by one frame and returns the new position, or cur
// if there is no tween running.
func step(tw *gween.Tween, cur float64) float64 {
	if tw == nil {
		return cur
	}
	v, _ := tw.Update(1)
	return float64(v)
}

// Box returns the view rectangle.
func (c *Camera) Box() geom.Box {
	return geom.MustBox(c.X, c.Y, c.W, c.H)
}

// Window returns the collision window for the current view: every cell the
// view touches plus one cell of margin on every side.
func (c *Camera) Window(tileSize int) collision.Window {
	tile := float64(tileSize)
	cellX := int(math.Floor(c.X/tile)) - 1
	cellY := int(math.Floor(c.Y/tile)) - 1
	return collision.Window{
		CellX:    cellX,
		CellY:    cellY,
		Width:    c.W + 3*tile,
		Height:   c.H + 3*tile,
		TileSize: tileSize,
		PixelX:   float64(cellX) * tile,
		PixelY:   float64(cellY) * tile,
	}
}

// pushTarget returns the view position along one axis that keeps [lo, hi]
// outside the zones at both ends of the view.
func pushTarget(view, size, zone, lo, hi float64) float64 {
	switch {
	case hi > view+size-zone:
		return hi - (size - zone)
	case lo < view+zone:
		return lo - zone
	}
	return view
}

func clampView(v, size, mapSize float64) float64 {
	if v > mapSize-size {
		v = mapSize - size
	}
	if v < 0 {
		v = 0
	}
	return v
}
