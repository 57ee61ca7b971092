package components

import (
	"github.com/automoto/tilehop/shared/controller"
	"github.com/yohamta/donburi"
)

// CharacterData is a controllable body plus what happened to it on the last
// frame.
type CharacterData struct {
	Controller *controller.Controller
	Input      controller.Input      // intent applied on the last step
	Resolution controller.Resolution // wall check of the last step
	SpawnX     float64
	SpawnY     float64
}

var Character = donburi.NewComponentType[CharacterData]()
