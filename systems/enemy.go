package systems

import (
	"math"
	"time"

	"github.com/automoto/starshot/components"
	"github.com/automoto/starshot/config"
	"github.com/automoto/starshot/signals"
	"github.com/automoto/starshot/systems/factory"
	"github.com/yohamta/donburi"
)

func (d *Director) watchEnemy(e *donburi.Entry) {
	components.Health.Get(e).OnChange(func() {
		d.onEnemyHealth(e)
	})
}

// onEnemyHealth flashes the enemy on a hit. At zero its body goes away at
// once and the entity itself when the flash ends.
func (d *Director) onEnemyHealth(e *donburi.Entry) {
	h, ok := components.Lookup(e, components.Health)
	if !ok {
		return
	}
	en := components.Enemy.Get(e)

	signals.HealthChanged.Publish(d.world, signals.HealthChangedEvent{
		Entity:  e,
		Current: h.Current,
		Max:     h.Max,
	})
	if en.Dying {
		return
	}
	if !h.Dead() {
		d.flash(e, config.Combat.FlashDuration, nil)
		return
	}

	en.Dying = true
	factory.DisableBody(e)
	d.clock.Cancel(en.ShootTimer)
	en.ShootTimer = 0
	d.flash(e, config.Combat.FlashDuration, func() {
		d.destroyEnemy(e)
	})
}

// armEnemy starts the enemy's fire loop at its variant's rate of fire.
func (d *Director) armEnemy(e *donburi.Entry) {
	en := components.Enemy.Get(e)
	d.clock.Cancel(en.ShootTimer)
	en.ShootTimer = 0

	rof := time.Duration(en.Config.Weapon.RateOfFire * float64(time.Second))
	if rof <= 0 {
		return
	}
	en.ShootTimer = d.clock.Every(rof, func() {
		en, ok := components.Lookup(e, components.Enemy)
		if !ok || en.Dying || !components.IsActive(e) {
			return
		}
		Shoot(d.world, e)
	})
}

func (d *Director) updateEnemies(ms float64) {
	for _, e := range d.enemies.Active() {
		d.moveEnemy(e, ms)
	}
	for _, e := range d.Specials() {
		d.moveEnemy(e, ms)
	}
}

func (d *Director) moveEnemy(e *donburi.Entry, ms float64) {
	en := components.Enemy.Get(e)
	t := components.Transform.Get(e)
	m := components.Movement.Get(e)

	en.Elapsed += ms / 1000
	if path := en.Config.Movement; path.Amplitude != 0 {
		t.X = en.StartX + math.Sin(en.Elapsed*path.Frequency)*path.Amplitude
	}
	m.MoveVertically(t, ms)

	if t.Y <= d.area.Height+2*components.Body.Get(e).Radius {
		return
	}
	if en.Dying {
		// Killed but still flashing: the kill is still reported.
		d.destroyEnemy(e)
		return
	}
	d.removeEnemy(e)
}

func (d *Director) destroyEnemy(e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	en := components.Enemy.Get(e)
	t := components.Transform.Get(e)
	category := components.CategoryEnemy
	if en.Special {
		category = components.CategorySpecialEnemy
	}
	signals.Destroyed.Publish(d.world, signals.DestroyedEvent{
		Entity:   e,
		Category: category,
		X:        t.X,
		Y:        t.Y,
	})
	d.removeEnemy(e)
}

// removeEnemy takes e out of play: pooled enemies return to the pool,
// special enemies leave the world.
func (d *Director) removeEnemy(e *donburi.Entry) {
	en, ok := components.Lookup(e, components.Enemy)
	if !ok {
		return
	}
	d.clock.Cancel(en.ShootTimer)
	en.ShootTimer = 0
	if f, ok := components.Lookup(e, components.Flash); ok {
		d.clock.Cancel(f.Timer)
		f.Timer = 0
		f.Active = false
	}
	factory.DisableBody(e)

	if !en.Special {
		d.enemies.Release(e)
		return
	}
	for i, s := range d.specials {
		if s == e {
			d.specials = append(d.specials[:i], d.specials[i+1:]...)
			break
		}
	}
	d.world.Remove(e.Entity())
}
