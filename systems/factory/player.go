package factory

import (
	"github.com/automoto/tilehop/archetypes"
	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/shared/controller"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64) (*donburi.Entry, error) {
	ctrl, err := controller.New(x, y, cfg.Player)
	if err != nil {
		return nil, err
	}

	player := archetypes.Player.Spawn(ecs)
	components.Character.SetValue(player, components.CharacterData{
		Controller: ctrl,
		SpawnX:     x,
		SpawnY:     y,
	})
	components.Animation.Set(player, GenerateAnimations())
	return player, nil
}
