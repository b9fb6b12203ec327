package factory

import (
	"github.com/automoto/starshot/archetypes"
	"github.com/automoto/starshot/components"
	"github.com/automoto/starshot/config"
	"github.com/automoto/starshot/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// enemyBulletSize is the square every enemy shot uses.
const enemyBulletSize = 12

// CreateEnemy assembles an inactive enemy of the given variant. Pooled
// enemies carry components.Pooled; special enemies live outside any pool.
func CreateEnemy(w donburi.World, variant string, special bool, pool components.ProjectileSource) *donburi.Entry {
	var e *donburi.Entry
	if special {
		e = archetypes.Enemy.Spawn(w)
	} else {
		e = archetypes.Enemy.Spawn(w, components.Pooled)
	}

	// Use the requested variant, fall back to the default record if unknown
	if _, exists := config.Enemies[variant]; !exists {
		variant = config.DefaultEnemy
	}
	vc := config.EnemyVariant(variant)

	components.Enemy.SetValue(e, components.EnemyData{
		Variant: variant,
		Config:  &vc,
		Special: special,
	})
	components.Health.Set(e, components.NewHealth(vc.HP))
	components.Movement.Set(e, components.NewMovement(vc.Speed/1000))
	components.Body.SetValue(e, components.BodyData{Radius: vc.Radius})
	components.Flash.SetValue(e, components.FlashData{Color: 0xffffff})

	weapon := components.NewWeapon(pool, config.BulletConfig{
		Width:  enemyBulletSize,
		Height: enemyBulletSize,
		Color:  vc.Weapon.BulletTint,
		Speed:  vc.Weapon.BulletSpeed,
		Damage: 1,
	})
	if vc.Weapon.Type == "spread" {
		count := vc.Weapon.Count
		if count <= 0 {
			count = 3
		}
		weapon.SetSpread(count, vc.Weapon.AngleStart, vc.Weapon.AngleEnd)
	}
	components.Weapon.Set(e, weapon)

	attachObject(e, tags.ResolvEnemy)
	return e
}

// EnableEnemy places an enemy at (x, y) facing down with full health.
func EnableEnemy(w donburi.World, e *donburi.Entry, x, y float64) {
	components.Transform.SetValue(e, components.TransformData{
		X:        x,
		Y:        y,
		Rotation: mgl64.DegToRad(90),
	})
	if enemy, ok := components.Lookup(e, components.Enemy); ok {
		enemy.StartX = x
		enemy.Elapsed = 0
		enemy.Dying = false
	}
	if h, ok := components.Lookup(e, components.Health); ok {
		h.Reset()
	}
	if m, ok := components.Lookup(e, components.Movement); ok {
		m.SetSpeed(m.Base)
	}
	if f, ok := components.Lookup(e, components.Flash); ok {
		f.Active = false
	}
	EnableBody(w, e)
}
