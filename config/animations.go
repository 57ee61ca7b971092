package config

import "github.com/automoto/tilehop/assets/animations"

// PlayerAnimations maps each player state to its frames: an atlas sprite
// and how many ticks it is shown.
var PlayerAnimations = map[animations.State][]animations.Frame{
	animations.Idle: {
		{Sprite: 241, Ticks: 20},
		{Sprite: 242, Ticks: 20},
		{Sprite: 241, Ticks: 10},
		{Sprite: 243, Ticks: 10},
		{Sprite: 241, Ticks: 10},
		{Sprite: 246, Ticks: 5},
		{Sprite: 241, Ticks: 10},
		{Sprite: 243, Ticks: 10},
		{Sprite: 244, Ticks: 20},
		{Sprite: 245, Ticks: 5},
		{Sprite: 244, Ticks: 10},
		{Sprite: 242, Ticks: 30},
	},
	animations.Walk: {
		{Sprite: 227, Ticks: 5},
		{Sprite: 228, Ticks: 5},
		{Sprite: 225, Ticks: 5},
		{Sprite: 226, Ticks: 5},
	},
}
