package factory

import (
	"github.com/automoto/starshot/archetypes"
	"github.com/automoto/starshot/components"
	"github.com/automoto/starshot/config"
	"github.com/automoto/starshot/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

func CreatePowerUp(w donburi.World) *donburi.Entry {
	e := archetypes.PowerUp.Spawn(w)
	components.Movement.Set(e, components.NewMovement(config.PowerUp.Speed))
	components.PowerUp.SetValue(e, components.PowerUpData{Size: config.PowerUp.Size})
	components.Body.SetValue(e, components.BodyData{Radius: config.PowerUp.Size / 2})
	attachObject(e, tags.ResolvPowerUp)
	return e
}

// EnablePowerUp activates a power-up carrying effect just above (x, 0).
func EnablePowerUp(w donburi.World, e *donburi.Entry, x float64, effect components.BoostEffect) {
	pu := components.PowerUp.Get(e)
	pu.Effect = effect
	components.Transform.SetValue(e, components.TransformData{
		X:        x,
		Y:        -pu.Size,
		Rotation: mgl64.DegToRad(config.PowerUp.Rotation),
	})
	EnableBody(w, e)
}
