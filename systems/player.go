package systems

import (
	"github.com/automoto/starshot/components"
	"github.com/automoto/starshot/config"
	"github.com/automoto/starshot/signals"
	"github.com/automoto/starshot/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

func (d *Director) updatePlayer(ms float64, in components.InputData) {
	p := d.player
	pd, ok := components.Lookup(p, components.Player)
	if !ok {
		return
	}
	if in.Ship != 0 && in.Ship != pd.ShipID {
		d.SelectShip(in.Ship)
	}
	if pd.Defeated {
		return
	}

	t := components.Transform.Get(p)
	m := components.Movement.Get(p)

	// Left wins when both are held.
	dir := 0.0
	if in.Left {
		dir = -1
	} else if in.Right {
		dir = 1
	}
	if in.Precision {
		// Turn rate follows the ship record, so boosts do not change it
		turn := config.Ship(pd.ShipID).MovementSpeed * ms
		t.Rotation += mgl64.DegToRad(turn) * dir
	} else {
		m.MoveHorizontally(t, dir*ms)
	}

	half := pd.Width / 2
	t.X = mgl64.Clamp(t.X, half, d.area.Width-half)

	if in.Fire && d.clock.Now() >= pd.NextShot {
		Shoot(d.world, p)
		pd.NextShot = d.clock.Now() + config.Combat.PlayerRateOfFire
	}
}

// SelectShip swaps the player's ship record. A live speed boost carries
// over to the new ship's speed.
func (d *Director) SelectShip(id int) {
	p := d.player
	boost, boosted := components.Lookup(p, components.SpeedBoost)
	m, ok := components.Lookup(p, components.Movement)
	if !ok {
		return
	}
	factor := 1.0
	if boosted && boost.Active && boost.Baseline > 0 {
		factor = m.Speed / boost.Baseline
	}

	factory.ApplyShip(p, id)

	if boosted && boost.Active {
		boost.Baseline = m.Speed
		m.SetSpeed(boost.Baseline * factor)
	}
	d.logger.Printf("[Director] ship %d selected", components.Player.Get(p).ShipID)
}

func (d *Director) watchPlayer(p *donburi.Entry) {
	components.Health.Get(p).OnChange(func() {
		d.onPlayerHealth(p)
	})
}

// onPlayerHealth flashes the player and briefly disables its body after
// every health change. Reaching zero defeats the player for good.
func (d *Director) onPlayerHealth(p *donburi.Entry) {
	h, ok := components.Lookup(p, components.Health)
	if !ok {
		return
	}
	pd := components.Player.Get(p)

	signals.HealthChanged.Publish(d.world, signals.HealthChangedEvent{
		Entity:  p,
		Current: h.Current,
		Max:     h.Max,
	})
	d.flash(p, config.Combat.FlashDuration, nil)

	d.clock.Cancel(pd.InvulnTimer)
	pd.InvulnTimer = 0
	factory.DisableBody(p)

	if h.Dead() {
		if pd.Defeated {
			return
		}
		pd.Defeated = true
		if weapon, ok := components.Lookup(p, components.Weapon); ok {
			weapon.Enabled = false
		}
		d.logger.Printf("[Director] player defeated, score %d", d.Score())
		signals.PlayerDefeated.Publish(d.world, signals.PlayerDefeatedEvent{Entity: p})
		return
	}

	pd.InvulnTimer = d.clock.After(config.Combat.InvulnDuration, func() {
		pd, ok := components.Lookup(p, components.Player)
		if !ok || pd.Defeated {
			return
		}
		pd.InvulnTimer = 0
		factory.EnableBody(d.world, p)
	})
}
