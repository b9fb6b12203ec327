package systems

import (
	"github.com/automoto/starshot/components"
	"github.com/automoto/starshot/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// SpreadAngles returns count evenly spaced angles from start to end
// inclusive. A single shot fires at start.
func SpreadAngles(count int, start, end float64) []float64 {
	if count <= 0 {
		return nil
	}
	angles := make([]float64, count)
	step := 0.0
	if count > 1 {
		step = (end - start) / float64(count-1)
	}
	for i := range angles {
		angles[i] = start + step*float64(i)
	}
	return angles
}

// Shoot fires the shooter's weapon once, in single or spread mode, and
// returns how many projectiles were launched. An exhausted pool silently
// produces fewer shots.
func Shoot(w donburi.World, shooter *donburi.Entry) int {
	weapon, ok := components.Lookup(shooter, components.Weapon)
	if !ok || !weapon.Enabled || weapon.Pool == nil {
		return 0
	}
	t, ok := components.Lookup(shooter, components.Transform)
	if !ok {
		return 0
	}
	radius := 0.0
	if body, ok := components.Lookup(shooter, components.Body); ok {
		radius = body.Radius
	}

	forward := mgl64.Rotate2D(t.Rotation).Mul2x1(mgl64.Vec2{1, 0})

	angles := []float64{0}
	if weapon.Spread != nil {
		angles = SpreadAngles(weapon.Spread.Count, weapon.Spread.AngleStart, weapon.Spread.AngleEnd)
	}

	fired := 0
	for _, deg := range angles {
		shot, ok := weapon.Pool.Get()
		if !ok {
			continue
		}
		dir := forward
		if deg != 0 {
			dir = mgl64.Rotate2D(mgl64.DegToRad(deg)).Mul2x1(forward)
		}
		muzzle := mgl64.Vec2{t.X, t.Y}.Add(dir.Mul(radius))
		velocity := dir.Mul(weapon.Bullet.Speed)
		factory.EnableProjectile(w, shot, muzzle.X(), muzzle.Y(), velocity.X(), velocity.Y(), weapon.Bullet)
		fired++
	}
	return fired
}
