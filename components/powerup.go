package components

import "github.com/yohamta/donburi"

// PowerUpData holds the effect the spawner assigned. Effect is nil until the
// power-up is activated and again after it is consumed.
type PowerUpData struct {
	Effect BoostEffect
	Size   float64
}

var PowerUp = donburi.NewComponentType[PowerUpData]()
