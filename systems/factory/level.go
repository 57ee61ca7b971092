package factory

import (
	"fmt"
	"log"

	"github.com/automoto/tilehop/archetypes"
	"github.com/automoto/tilehop/assets"
	"github.com/automoto/tilehop/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads the embedded levels and makes the named one current. An
// empty name picks the first level in sorted order.
func CreateLevel(ecs *ecs.ECS, name string) (*donburi.Entry, error) {
	loader := assets.NewLevelLoader()
	levels, names, err := loader.LoadLevels()
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = names[0]
	}
	current, ok := levels[name]
	if !ok {
		return nil, fmt.Errorf("level %q not found, have %v", name, names)
	}
	log.Printf("Loaded level %s (%dx%d tiles, %d spawn points)",
		name, current.Width, current.Height, len(current.SpawnPoints))

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		CurrentLevel: current,
		LevelName:    name,
		Levels:       levels,
		Names:        names,
	})
	return level, nil
}
