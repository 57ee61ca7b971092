package components

import (
	"github.com/automoto/tilehop/shared/tuning"
	"github.com/yohamta/donburi"
)

// DebugData holds the developer overlay state and the tuning file watcher.
type DebugData struct {
	Overlay   bool
	Watcher   *tuning.Watcher // nil when no tuning file is watched
	LastError string          // most recent tuning reload failure
	Reloads   int
}

var Debug = donburi.NewComponentType[DebugData]()
