package systems

import (
	"github.com/automoto/starshot/components"
	"github.com/automoto/starshot/systems/factory"
	"github.com/yohamta/donburi"
)

// offscreenMargin lets shots fired just outside the play area enter it.
const offscreenMargin = 64

// UpdateProjectiles moves every active shot in pool by ms milliseconds and
// releases the ones that left area on any side.
func UpdateProjectiles(pool *Pool, area PlayArea, ms float64) {
	for _, e := range pool.Active() {
		t := components.Transform.Get(e)
		p := components.Projectile.Get(e)
		t.X += p.VX * ms / 1000
		t.Y += p.VY * ms / 1000

		if t.X < -offscreenMargin || t.X > area.Width+offscreenMargin ||
			t.Y < -offscreenMargin || t.Y > area.Height+offscreenMargin {
			releaseProjectile(pool, e)
		}
	}
}

func releaseProjectile(pool *Pool, e *donburi.Entry) {
	factory.DisableBody(e)
	pool.Release(e)
}
