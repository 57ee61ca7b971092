package systems

import (
	"github.com/automoto/tilehop/assets/animations"
	"github.com/automoto/tilehop/components"
	"github.com/automoto/tilehop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations walks while a direction is held and idles otherwise.
func UpdateAnimations(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		char := components.Character.Get(entry)
		anim := components.Animation.Get(entry)
		if anim.Controller == nil {
			return
		}
		anim.Controller.SetState(animationState(char))
		anim.Controller.Update()
	})
}

func animationState(char *components.CharacterData) animations.State {
	if char.Input.Left || char.Input.Right {
		return animations.Walk
	}
	return animations.Idle
}
