package config

import "github.com/yohamta/donburi/ecs"

// Render layers, drawn in order.
const (
	LayerTiles ecs.LayerID = iota
	LayerSprites
	LayerDebug
	LayerHUD
)
