package factory

import (
	"math"

	"github.com/automoto/starshot/archetypes"
	"github.com/automoto/starshot/components"
	"github.com/automoto/starshot/config"
	"github.com/automoto/starshot/tags"
	"github.com/yohamta/donburi"
)

// CreatePlayerShot allocates an inactive projectile for the player's pool.
func CreatePlayerShot(w donburi.World) *donburi.Entry {
	e := archetypes.PlayerShot.Spawn(w)
	attachObject(e, tags.ResolvPlayerShot)
	return e
}

// CreateEnemyShot allocates an inactive projectile for the enemies' pool.
func CreateEnemyShot(w donburi.World) *donburi.Entry {
	e := archetypes.EnemyShot.Spawn(w)
	attachObject(e, tags.ResolvEnemyShot)
	return e
}

// EnableProjectile arms an acquired projectile with a bullet template and
// launches it from (x, y) at (vx, vy) pixels per second.
func EnableProjectile(w donburi.World, e *donburi.Entry, x, y, vx, vy float64, bullet config.BulletConfig) {
	components.Transform.SetValue(e, components.TransformData{
		X:        x,
		Y:        y,
		Rotation: math.Atan2(vy, vx),
	})
	components.Projectile.SetValue(e, components.ProjectileData{
		VX:     vx,
		VY:     vy,
		Damage: bullet.Damage,
		Color:  bullet.Color,
	})
	components.Body.SetValue(e, components.BodyData{
		Radius: math.Max(bullet.Width, bullet.Height) / 2,
		Width:  bullet.Width,
		Height: bullet.Height,
	})
	EnableBody(w, e)
}
