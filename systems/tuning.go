package systems

import (
	"log"

	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/shared/controller"
	"github.com/automoto/tilehop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTuning applies any tuning the file watcher has reloaded since the
// last frame. It never blocks.
func UpdateTuning(ecs *ecs.ECS) {
	debug := getDebug(ecs)
	if debug == nil || debug.Watcher == nil {
		return
	}

	for {
		select {
		case t, ok := <-debug.Watcher.Updates:
			if !ok {
				debug.Watcher = nil
				return
			}
			applyTuning(ecs, debug, t)
		case err, ok := <-debug.Watcher.Errors:
			if !ok {
				debug.Watcher = nil
				return
			}
			log.Printf("tuning reload: %v", err)
			debug.LastError = err.Error()
		default:
			return
		}
	}
}

func applyTuning(ecs *ecs.ECS, debug *components.DebugData, t controller.Tuning) {
	var failed error
	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		if err := components.Character.Get(entry).Controller.SetTuning(t); err != nil {
			failed = err
		}
	})
	if failed != nil {
		log.Printf("tuning reload rejected: %v", failed)
		debug.LastError = failed.Error()
		return
	}

	cfg.Player = t
	debug.Reloads++
	debug.LastError = ""
	log.Printf("tuning reloaded: %+v", t)
}
