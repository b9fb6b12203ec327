package components

import (
	"github.com/automoto/starshot/config"
	"github.com/yohamta/donburi"
)

// ProjectileSource hands out inactive projectiles. A weapon borrows one; the
// source outlives every weapon that shares it.
type ProjectileSource interface {
	Get() (*donburi.Entry, bool)
}

// SpreadConfig fans a single trigger into Count shots from AngleStart to
// AngleEnd degrees, inclusive, relative to the shooter's heading.
type SpreadConfig struct {
	Count      int
	AngleStart float64
	AngleEnd   float64
}

// WeaponData carries no cooldown; the owner decides when to fire.
type WeaponData struct {
	Enabled bool
	Pool    ProjectileSource
	Bullet  config.BulletConfig
	Spread  *SpreadConfig
}

func NewWeapon(pool ProjectileSource, bullet config.BulletConfig) *WeaponData {
	return &WeaponData{Enabled: true, Pool: pool, Bullet: bullet}
}

// SetSpread switches the weapon from single shots to a fan.
func (w *WeaponData) SetSpread(count int, angleStartDeg, angleEndDeg float64) {
	w.Spread = &SpreadConfig{Count: count, AngleStart: angleStartDeg, AngleEnd: angleEndDeg}
}

var Weapon = donburi.NewComponentType[WeaponData]()
