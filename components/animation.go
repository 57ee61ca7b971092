package components

import (
	"github.com/automoto/tilehop/assets/animations"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Controller *animations.Controller
}

// Sprite returns the atlas sprite of the current frame, or -1 if nothing is
// playing.
func (a *AnimationData) Sprite() int {
	if a.Controller == nil || a.Controller.Current() == nil {
		return -1
	}
	return a.Controller.Current().Sprite()
}

var Animation = donburi.NewComponentType[AnimationData]()
