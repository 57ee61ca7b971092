// Package collision holds the static obstacle set built from a tile-grid
// window and the sweep that finds the first obstacle a moving probe touches.
package collision

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sort"

	"github.com/automoto/tilehop/shared/geom"
	"github.com/solarlune/resolv"
)

// Resolv tags for the broadphase space.
const (
	tagSolid = "solid"
	tagQuery = "query"
)

// MaxWindowCells is the window area above which a rebuild logs a warning.
// Rebuilds are O(window area) every frame.
const MaxWindowCells = 4096

// broadphasePad widens broadphase queries so obstacles that only touch the
// region's edge are still returned. resolv assigns an object to cells by
// [X, X+W-1], which drops exact edge contact.
const broadphasePad = 1.0

// ErrInvalidWindow is returned by Rebuild for a window it cannot scan.
var ErrInvalidWindow = errors.New("collision: invalid window")

// TileSource answers tile identifiers for grid cells. Cells outside the map
// must return 0.
type TileSource interface {
	GetTile(cellX, cellY int) int
}

// Window is a rectangular region of the tile grid. CellX/CellY is the first
// cell scanned, Width/Height are in pixels, and PixelX/PixelY is where the
// first cell's bottom-left corner sits in world space.
type Window struct {
	CellX, CellY   int
	Width, Height  float64
	TileSize       int
	PixelX, PixelY float64
}

// Cols returns the number of cell columns the window covers.
func (w Window) Cols() int {
	return int(math.Ceil(w.Width / float64(w.TileSize)))
}

// Rows returns the number of cell rows the window covers.
func (w Window) Rows() int {
	return int(math.Ceil(w.Height / float64(w.TileSize)))
}

func (w Window) validate() error {
	if w.TileSize <= 0 || w.Width < 0 || w.Height < 0 ||
		math.IsNaN(w.Width) || math.IsNaN(w.Height) {
		return fmt.Errorf("tile %d, size %vx%v: %w", w.TileSize, w.Width, w.Height, ErrInvalidWindow)
	}
	return nil
}

// Obstacle is one solid tile of the current window.
type Obstacle struct {
	Box          geom.Box
	CellX, CellY int
}

// World is the static obstacle set for the visible window. It is created
// empty and replaced wholesale by every Rebuild; the sweep only reads it.
type World struct {
	solidTile int
	obstacles []Obstacle

	space            *resolv.Space
	query            *resolv.Object
	originX, originY float64
	spaceW, spaceH   float64
	candidates       []int
}

// NewWorld returns an empty world treating tiles equal to solidTile as solid.
func NewWorld(solidTile int) *World {
	return &World{solidTile: solidTile}
}

// Rebuild scans every cell of the window and replaces the obstacle set with
// one tile-sized box per solid cell, in row-then-column order. An invalid
// window leaves the previous set in place.
func (w *World) Rebuild(tiles TileSource, win Window) error {
	if err := win.validate(); err != nil {
		return err
	}

	cols, rows := win.Cols(), win.Rows()
	if cols*rows > MaxWindowCells {
		log.Printf("collision: window %dx%d cells exceeds %d, per-frame rebuild cost grows with area",
			cols, rows, MaxWindowCells)
	}

	tile := float64(win.TileSize)
	obstacles := make([]Obstacle, 0, len(w.obstacles))
	for dy := 0; dy < rows; dy++ {
		for dx := 0; dx < cols; dx++ {
			cellX, cellY := win.CellX+dx, win.CellY+dy
			if tiles.GetTile(cellX, cellY) != w.solidTile {
				continue
			}
			obstacles = append(obstacles, Obstacle{
				Box:   geom.MustBox(win.PixelX+float64(dx)*tile, win.PixelY+float64(dy)*tile, tile, tile),
				CellX: cellX,
				CellY: cellY,
			})
		}
	}

	w.obstacles = obstacles
	w.rebuildSpace(win, cols, rows)
	return nil
}

// rebuildSpace mirrors the obstacles into a resolv space one tile larger than
// the window on every side. Space coordinates are offset so the window never
// lands on negative cells.
func (w *World) rebuildSpace(win Window, cols, rows int) {
	tile := float64(win.TileSize)
	w.originX = win.PixelX - tile
	w.originY = win.PixelY - tile
	w.spaceW = float64((cols + 2) * win.TileSize)
	w.spaceH = float64((rows + 2) * win.TileSize)

	space := resolv.NewSpace((cols+2)*win.TileSize, (rows+2)*win.TileSize, win.TileSize, win.TileSize)
	for i, o := range w.obstacles {
		obj := resolv.NewObject(o.Box.X()-w.originX, o.Box.Y()-w.originY, o.Box.W(), o.Box.H(), tagSolid)
		obj.Data = i
		space.Add(obj)
	}

	w.query = resolv.NewObject(0, 0, 1, 1, tagQuery)
	space.Add(w.query)
	w.space = space
}

// Obstacles returns the current obstacle set. Callers must not modify it.
func (w *World) Obstacles() []Obstacle {
	return w.obstacles
}

// Len returns the number of obstacles.
func (w *World) Len() int {
	return len(w.obstacles)
}

// Box returns the box of obstacle i.
func (w *World) Box(i int) geom.Box {
	return w.obstacles[i].Box
}

// Candidates returns, in ascending order, the indices of obstacles near
// region. The result always contains every obstacle intersecting region and
// is only valid until the next call.
func (w *World) Candidates(region geom.Box) []int {
	w.candidates = w.candidates[:0]
	if w.space == nil || len(w.obstacles) == 0 {
		return w.candidates
	}

	// Clip the query to the space so a long sweep does not walk cells that
	// cannot hold obstacles.
	minX := max(region.X()-w.originX-broadphasePad, 0)
	minY := max(region.Y()-w.originY-broadphasePad, 0)
	maxX := min(region.Right()-w.originX+broadphasePad, w.spaceW)
	maxY := min(region.Top()-w.originY+broadphasePad, w.spaceH)
	if minX > maxX || minY > maxY {
		return w.candidates
	}

	w.query.X, w.query.Y = minX, minY
	w.query.W, w.query.H = maxX-minX, maxY-minY
	w.query.Update()

	check := w.query.Check(0, 0, tagSolid)
	if check == nil {
		return w.candidates
	}
	for _, obj := range check.ObjectsByTags(tagSolid) {
		if i, ok := obj.Data.(int); ok {
			w.candidates = append(w.candidates, i)
		}
	}
	sort.Ints(w.candidates)
	return w.candidates
}

// FirstIntersecting returns the lowest index of an obstacle intersecting b.
func (w *World) FirstIntersecting(b geom.Box) (int, bool) {
	return FirstIntersecting(w, b)
}

// FirstIntersecting returns the lowest index in set of an obstacle
// intersecting b.
func FirstIntersecting(set ObstacleSet, b geom.Box) (int, bool) {
	for _, i := range set.Candidates(b) {
		if b.Intersects(set.Box(i)) {
			return i, true
		}
	}
	return -1, false
}
