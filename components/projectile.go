package components

import "github.com/yohamta/donburi"

// ProjectileData is a pooled shot. Velocity is in pixels per second.
type ProjectileData struct {
	VX, VY float64
	Damage int
	Color  uint32
}

var Projectile = donburi.NewComponentType[ProjectileData]()
