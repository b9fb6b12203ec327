package scenes

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/automoto/starshot/components"
	"github.com/automoto/starshot/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// feedback is the presentation state driven by core signals.
type feedback struct {
	shakeUntil     time.Duration
	shakeIntensity float64
	flashUntil     time.Duration
	boosted        bool
	defeated       bool
	defeatedAt     time.Duration
}

var (
	colorPlayer  = color.RGBA{0x4e, 0xc9, 0xff, 0xff}
	colorBoosted = color.RGBA{0x7c, 0xff, 0xa8, 0xff}
	colorEnemy   = color.RGBA{0xe0, 0x3c, 0x3c, 0xff}
	colorHeal    = color.RGBA{0xff, 0x55, 0x77, 0xff}
	colorSpeed   = color.RGBA{0x55, 0x88, 0xff, 0xff}
	colorFlash   = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

func rgb(c uint32) color.RGBA {
	return color.RGBA{uint8(c >> 16), uint8(c >> 8), uint8(c), 0xff}
}

// draw renders every active body as a debug shape, offset by the current
// camera shake.
func (ss *ShooterScene) draw(e *ecs.ECS, screen *ebiten.Image) {
	now := ss.director.Clock().Now()
	area := ss.director.Area()

	var ox, oy float32
	if now < ss.fx.shakeUntil {
		amp := float32(ss.fx.shakeIntensity * area.Width)
		ox = (rand.Float32()*2 - 1) * amp
		oy = (rand.Float32()*2 - 1) * amp
	}

	tags.PowerUp.Each(e.World, func(entry *donburi.Entry) {
		if !components.IsActive(entry) {
			return
		}
		c := colorHeal
		if pu := components.PowerUp.Get(entry); pu.Effect != nil && pu.Effect.Kind() == components.BoostSpeed {
			c = colorSpeed
		}
		drawBody(screen, entry, ox, oy, c)
	})
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if components.IsActive(entry) {
			drawBody(screen, entry, ox, oy, colorEnemy)
		}
	})
	drawShots(screen, e.World, tags.PlayerShot, ox, oy)
	drawShots(screen, e.World, tags.EnemyShot, ox, oy)

	if p := ss.director.Player(); p.Valid() {
		c := colorPlayer
		if ss.fx.boosted {
			c = colorBoosted
		}
		drawBody(screen, p, ox, oy, c)
	}

	if now < ss.fx.flashUntil {
		vector.DrawFilledRect(screen, 0, 0, float32(area.Width), float32(area.Height), color.RGBA{0xff, 0xff, 0xff, 0x60}, false)
	}

	hp := components.Health.Get(ss.director.Player())
	status := fmt.Sprintf("SCORE %d  HP %d/%d", ss.director.Score(), hp.Current, hp.Max)
	if ss.fx.defeated {
		status += "  DEFEATED"
	}
	ebitenutil.DebugPrint(screen, status)
}

func drawBody(screen *ebiten.Image, entry *donburi.Entry, ox, oy float32, c color.RGBA) {
	t := components.Transform.Get(entry)
	b := components.Body.Get(entry)
	if f, ok := components.Lookup(entry, components.Flash); ok && f.Active {
		c = colorFlash
	}
	vector.DrawFilledCircle(screen, float32(t.X)+ox, float32(t.Y)+oy, float32(b.Radius), c, true)
}

func drawShots(screen *ebiten.Image, w donburi.World, tag interface {
	Each(donburi.World, func(*donburi.Entry))
}, ox, oy float32) {
	tag.Each(w, func(entry *donburi.Entry) {
		if !components.IsActive(entry) {
			return
		}
		t := components.Transform.Get(entry)
		b := components.Body.Get(entry)
		c := rgb(components.Projectile.Get(entry).Color)
		vector.DrawFilledRect(screen,
			float32(t.X-b.Width/2)+ox, float32(t.Y-b.Height/2)+oy,
			float32(b.Width), float32(b.Height), c, false)
	})
}
