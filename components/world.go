package components

import (
	"github.com/automoto/tilehop/shared/collision"
	"github.com/yohamta/donburi"
)

type CollisionWorldData struct {
	World *collision.World
}

var CollisionWorld = donburi.NewComponentType[CollisionWorldData]()
