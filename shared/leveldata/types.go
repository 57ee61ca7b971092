// Package leveldata parses TMX levels into a tile grid the collision world can
// query. It has no dependencies on ebitengine or donburi so the headless
// simulator can use it.
package leveldata

// TileGrid is one tile layer of a level with rows stored bottom-up, so cell
// (0, 0) is the bottom-left tile and y grows upward like world space.
type TileGrid struct {
	Name        string
	Width       int // in cells
	Height      int // in cells
	TileWidth   int
	TileHeight  int
	SpawnPoints []SpawnPoint

	tiles []int
}

// SpawnPoint is a player spawn location in world space (bottom-left, y up).
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// NewTileGrid builds a grid from rows given top-down, as they appear in a
// map editor. Every row must be width cells long.
func NewTileGrid(tileSize int, rows [][]int) *TileGrid {
	g := &TileGrid{
		Height:     len(rows),
		TileWidth:  tileSize,
		TileHeight: tileSize,
	}
	if len(rows) > 0 {
		g.Width = len(rows[0])
	}
	g.tiles = make([]int, g.Width*g.Height)
	for r, row := range rows {
		y := g.Height - 1 - r
		copy(g.tiles[y*g.Width:(y+1)*g.Width], row)
	}
	return g
}

// GetTile returns the tile identifier at a cell, or 0 outside the grid.
func (g *TileGrid) GetTile(cellX, cellY int) int {
	if cellX < 0 || cellY < 0 || cellX >= g.Width || cellY >= g.Height {
		return 0
	}
	return g.tiles[cellY*g.Width+cellX]
}

// PixelWidth returns the grid width in pixels.
func (g *TileGrid) PixelWidth() float64 {
	return float64(g.Width * g.TileWidth)
}

// PixelHeight returns the grid height in pixels.
func (g *TileGrid) PixelHeight() float64 {
	return float64(g.Height * g.TileHeight)
}

// Spawn returns the spawn point with the lowest index, or false if the level
// has none.
func (g *TileGrid) Spawn() (SpawnPoint, bool) {
	if len(g.SpawnPoints) == 0 {
		return SpawnPoint{}, false
	}
	best := g.SpawnPoints[0]
	for _, sp := range g.SpawnPoints[1:] {
		if sp.Index < best.Index {
			best = sp
		}
	}
	return best, true
}
