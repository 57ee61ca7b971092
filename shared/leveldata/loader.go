package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// ErrLayerNotFound is returned when a TMX file has no tile layer of the
// requested name.
var ErrLayerNotFound = errors.New("leveldata: tile layer not found")

// LoadTileGrid parses a TMX file and returns the named tile layer plus the
// player spawn points. Tiles are stored as global tile identifiers (tileset
// first GID plus local ID), 0 for empty cells. It takes an fs.FS so callers
// can pass embed.FS (game) or os.DirFS (simulator).
func LoadTileGrid(fsys fs.FS, tmxPath, layerName string) (*TileGrid, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	grid := &TileGrid{
		Name:       strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:      levelMap.Width,
		Height:     levelMap.Height,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
		tiles:      make([]int, levelMap.Width*levelMap.Height),
	}

	found := false
	for _, layer := range levelMap.Layers {
		if layer.Name != layerName {
			continue
		}
		// Tiled stores rows top-down; flip so row 0 is the bottom of the map.
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile == nil || tile.IsNil() {
					continue
				}
				cellY := levelMap.Height - 1 - y
				grid.tiles[cellY*levelMap.Width+x] = int(tile.Tileset.FirstGID + tile.ID)
			}
		}
		found = true
		break
	}
	if !found {
		return nil, fmt.Errorf("%s layer %q: %w", tmxPath, layerName, ErrLayerNotFound)
	}

	// Parse player spawn points from PlayerSpawn object group
	mapHeight := grid.PixelHeight()
	for _, og := range levelMap.ObjectGroups {
		if og.Name != "PlayerSpawn" {
			continue
		}
		for _, o := range og.Objects {
			grid.SpawnPoints = append(grid.SpawnPoints, SpawnPoint{
				X:     o.X,
				Y:     mapHeight - o.Y - o.Height,
				Index: o.Properties.GetInt("spawnIndex"),
			})
		}
	}

	sort.SliceStable(grid.SpawnPoints, func(i, j int) bool {
		return grid.SpawnPoints[i].Index < grid.SpawnPoints[j].Index
	})

	return grid, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads the
// named layer of each, and returns a map keyed by stem name plus a sorted
// list of names.
func LoadAllLevels(fsys fs.FS, levelsDir, layerName string) (map[string]*TileGrid, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*TileGrid, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		grid, err := LoadTileGrid(fsys, path, layerName)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[grid.Name] = grid
		names = append(names, grid.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
