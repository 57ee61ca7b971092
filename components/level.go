package components

import (
	"github.com/automoto/tilehop/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.TileGrid
	LevelName    string
	Levels       map[string]*leveldata.TileGrid
	Names        []string // sorted level names
}

var Level = donburi.NewComponentType[LevelData]()
