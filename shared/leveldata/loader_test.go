package leveldata

import (
	"errors"
	"os"
	"testing"
)

func TestLoadTileGridFlipsRows(t *testing.T) {
	grid, err := LoadTileGrid(os.DirFS("testdata"), "small.tmx", "ground")
	if err != nil {
		t.Fatalf("LoadTileGrid: %v", err)
	}
	if grid.Name != "small" || grid.Width != 4 || grid.Height != 3 || grid.TileWidth != 16 {
		t.Fatalf("grid = %+v", grid)
	}

	cases := []struct {
		x, y int
		want int
	}{
		{0, 0, 113},
		{1, 0, 113},
		{2, 0, 97},
		{3, 0, 113},
		{3, 1, 113},
		{0, 1, 0},
		{3, 2, 0},
		{-1, 0, 0},
		{4, 0, 0},
		{0, 3, 0},
	}
	for _, c := range cases {
		if got := grid.GetTile(c.x, c.y); got != c.want {
			t.Errorf("GetTile(%d,%d) = %d, want %d", c.x, c.y, got, c.want)
		}
	}
}

func TestLoadTileGridSpawnPoints(t *testing.T) {
	grid, err := LoadTileGrid(os.DirFS("testdata"), "small.tmx", "ground")
	if err != nil {
		t.Fatalf("LoadTileGrid: %v", err)
	}
	if len(grid.SpawnPoints) != 2 {
		t.Fatalf("spawn points = %+v", grid.SpawnPoints)
	}

	sp, ok := grid.Spawn()
	if !ok {
		t.Fatal("Spawn reported none")
	}
	// A point 16px below the top of a 48px map.
	if sp.Index != 0 || sp.X != 16 || sp.Y != 32 {
		t.Fatalf("Spawn = %+v, want index 0 at (16,32)", sp)
	}
	// A 16px tall rect whose top is 8px below the top of the map.
	if second := grid.SpawnPoints[1]; second.X != 48 || second.Y != 24 {
		t.Fatalf("second spawn = %+v, want (48,24)", second)
	}
}

func TestLoadTileGridMissingLayer(t *testing.T) {
	_, err := LoadTileGrid(os.DirFS("testdata"), "small.tmx", "no-such-layer")
	if !errors.Is(err, ErrLayerNotFound) {
		t.Fatalf("err = %v, want ErrLayerNotFound", err)
	}
}

func TestLoadAllLevels(t *testing.T) {
	levels, names, err := LoadAllLevels(os.DirFS("."), "testdata", "ground")
	if err != nil {
		t.Fatalf("LoadAllLevels: %v", err)
	}
	if len(names) != 1 || names[0] != "small" || levels["small"] == nil {
		t.Fatalf("names = %v levels = %v", names, levels)
	}

	if _, _, err := LoadAllLevels(os.DirFS("."), "nowhere", "ground"); err == nil {
		t.Fatal("expected an error for a directory without levels")
	}
}

func TestNewTileGrid(t *testing.T) {
	g := NewTileGrid(16, [][]int{
		{0, 5},
		{7, 0},
	})
	if g.GetTile(0, 0) != 7 || g.GetTile(1, 1) != 5 || g.GetTile(1, 0) != 0 {
		t.Fatalf("rows not flipped: %v", g.tiles)
	}
	if g.PixelWidth() != 32 || g.PixelHeight() != 32 {
		t.Fatalf("pixel size = %vx%v", g.PixelWidth(), g.PixelHeight())
	}
	if _, ok := g.Spawn(); ok {
		t.Fatal("grid without spawn points reported one")
	}
}
