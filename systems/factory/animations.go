package factory

import (
	"github.com/automoto/tilehop/assets/animations"
	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
)

// GenerateAnimations builds the player's animation controller from the frame
// tables in config, starting idle.
func GenerateAnimations() *components.AnimationData {
	return &components.AnimationData{
		Controller: animations.NewController(animations.Idle, cfg.PlayerAnimations),
	}
}
