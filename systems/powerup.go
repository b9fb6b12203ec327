package systems

import (
	"github.com/automoto/starshot/components"
	"github.com/automoto/starshot/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdatePowerUps drifts active power-ups down and releases the ones that
// fell past the bottom of area.
func UpdatePowerUps(pool *Pool, area PlayArea, ms float64) {
	for _, e := range pool.Active() {
		t := components.Transform.Get(e)
		components.Movement.Get(e).MoveVertically(t, ms)
		if t.Y > area.Height+components.PowerUp.Get(e).Size {
			releasePowerUp(pool, e)
		}
	}
}

func releasePowerUp(pool *Pool, e *donburi.Entry) {
	factory.DisableBody(e)
	if pu, ok := components.Lookup(e, components.PowerUp); ok {
		pu.Effect = nil
	}
	pool.Release(e)
}
