package factory

import (
	"github.com/automoto/tilehop/archetypes"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateInput spawns the input singleton. Its zero value has nothing held.
func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Input.Spawn(ecs)
}
