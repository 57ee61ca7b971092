package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

type LevelLoader struct {
	Dir       string
	LayerName string
}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{
		Dir:       config.World.LevelDir,
		LayerName: config.World.LayerName,
	}
}

// LoadLevels loads every embedded level, keyed by file stem, plus the sorted
// list of stems.
func (l *LevelLoader) LoadLevels() (map[string]*leveldata.TileGrid, []string, error) {
	levels, names, err := leveldata.LoadAllLevels(assetFS, l.Dir, l.LayerName)
	if err != nil {
		return nil, nil, fmt.Errorf("embedded levels: %w", err)
	}
	return levels, names, nil
}

func (l *LevelLoader) MustLoadLevels() (map[string]*leveldata.TileGrid, []string) {
	levels, names, err := l.LoadLevels()
	if err != nil {
		panic(err)
	}
	return levels, names
}
