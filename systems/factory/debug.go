package factory

import (
	"github.com/automoto/tilehop/archetypes"
	"github.com/automoto/tilehop/components"
	"github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/shared/tuning"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDebug spawns the overlay state. watcher may be nil.
func CreateDebug(ecs *ecs.ECS, watcher *tuning.Watcher) *donburi.Entry {
	debug := archetypes.Debug.Spawn(ecs)
	components.Debug.Set(debug, &components.DebugData{
		Overlay: config.Debug.ShowOverlay,
		Watcher: watcher,
	})
	return debug
}
