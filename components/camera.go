package components

import (
	"github.com/automoto/tilehop/shared/sim"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	View *sim.Camera
}

var Camera = donburi.NewComponentType[CameraData]()
