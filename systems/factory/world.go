package factory

import (
	"github.com/automoto/tilehop/archetypes"
	"github.com/automoto/tilehop/components"
	"github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/shared/collision"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCollisionWorld(ecs *ecs.ECS) *donburi.Entry {
	world := archetypes.CollisionWorld.Spawn(ecs)
	components.CollisionWorld.Set(world, &components.CollisionWorldData{
		World: collision.NewWorld(config.World.SolidTile),
	})
	return world
}
