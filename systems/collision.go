package systems

import (
	"github.com/automoto/starshot/components"
	"github.com/automoto/starshot/config"
	"github.com/automoto/starshot/signals"
	"github.com/yohamta/donburi"
)

// GroupPair names the two overlap groups an Overlap was reported for.
type GroupPair int

const (
	PairPlayerShotEnemy GroupPair = iota + 1 // A shot, B enemy
	PairEnemyShotPlayer                      // A shot, B player
	PairPlayerEnemy                          // A player, B enemy
	PairPlayerPowerUp                        // A player, B power-up
)

func (p GroupPair) String() string {
	switch p {
	case PairPlayerShotEnemy:
		return "player_shot/enemy"
	case PairEnemyShotPlayer:
		return "enemy_shot/player"
	case PairPlayerEnemy:
		return "player/enemy"
	case PairPlayerPowerUp:
		return "player/powerup"
	}
	return "unknown"
}

// Overlap is one externally reported contact between two entities.
type Overlap struct {
	Pair GroupPair
	A, B *donburi.Entry
}

// ResolveOverlap applies the collision rule for o immediately. Overlaps
// involving an inactive entity or a disabled body are ignored.
func (d *Director) ResolveOverlap(o Overlap) {
	if !components.BodyEnabled(o.A) || !components.BodyEnabled(o.B) {
		return
	}

	switch o.Pair {
	case PairPlayerShotEnemy:
		shot, enemy := o.A, o.B
		damage := projectileDamage(shot)
		d.addScore(1)
		releaseProjectile(d.playerShots, shot)
		if h, ok := components.Lookup(enemy, components.Health); ok {
			h.Damage(damage)
		}

	case PairEnemyShotPlayer:
		shot, player := o.A, o.B
		damage := projectileDamage(shot)
		releaseProjectile(d.enemyShots, shot)
		if h, ok := components.Lookup(player, components.Health); ok {
			h.Damage(damage)
		}
		d.shake(config.Combat.ShotShake)

	case PairPlayerEnemy:
		player, enemy := o.A, o.B
		d.addScore(1)
		// Max never changes after construction, so Damage(Max) is always lethal.
		if h, ok := components.Lookup(enemy, components.Health); ok {
			h.Damage(h.Max)
		}
		if h, ok := components.Lookup(player, components.Health); ok {
			h.Damage(config.Combat.ContactDamage)
		}
		d.shake(config.Combat.ContactShake)

	case PairPlayerPowerUp:
		player, powerUp := o.A, o.B
		pu, ok := components.Lookup(powerUp, components.PowerUp)
		if !ok {
			return
		}
		if pu.Effect != nil {
			pu.Effect.Apply(d.world, player)
		}
		pu.Effect = nil
		releasePowerUp(d.powerUps, powerUp)
		signals.CameraFlash.Publish(d.world, signals.FlashEvent{Duration: config.Combat.PickupFlash})
	}
}

func projectileDamage(shot *donburi.Entry) int {
	if p, ok := components.Lookup(shot, components.Projectile); ok {
		return p.Damage
	}
	return 0
}

func (d *Director) addScore(delta int) {
	e, ok := components.Score.First(d.world)
	if !ok {
		return
	}
	score := components.Score.Get(e)
	score.Value += delta
	signals.ScoreChanged.Publish(d.world, signals.ScoreEvent{Delta: delta, Total: score.Value})
}

func (d *Director) shake(s config.ShakeConfig) {
	signals.CameraShake.Publish(d.world, signals.ShakeEvent{
		Duration:  s.Duration,
		Intensity: s.Intensity,
	})
}
