package factory

import (
	"github.com/automoto/starshot/archetypes"
	"github.com/automoto/starshot/components"
	"github.com/automoto/starshot/config"
	"github.com/automoto/starshot/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the player at (x, y) armed with shots from pool.
func CreatePlayer(w donburi.World, x, y float64, pool components.ProjectileSource) *donburi.Entry {
	p := archetypes.Player.Spawn(w)

	components.Transform.SetValue(p, components.TransformData{
		X:        x,
		Y:        y,
		Rotation: mgl64.DegToRad(config.Combat.PlayerRotation),
	})
	components.Health.Set(p, components.NewHealth(config.Combat.PlayerHealth))
	components.Movement.Set(p, components.NewMovement(0))
	components.Weapon.Set(p, components.NewWeapon(pool, config.PlayerBullet))
	components.Flash.SetValue(p, components.FlashData{Color: 0xffffff})

	attachObject(p, tags.ResolvPlayer)
	ApplyShip(p, config.DefaultShip)
	EnableBody(w, p)

	return p
}

// ApplyShip copies a ship record onto the player: texture, body circle and
// movement speed. Unknown ids use the default ship.
func ApplyShip(p *donburi.Entry, id int) {
	ship := config.Ship(id)
	if _, ok := config.Ships[id]; !ok {
		id = config.DefaultShip
	}

	if pd, ok := components.Lookup(p, components.Player); ok {
		pd.ShipID = id
		pd.Texture = ship.Texture
		pd.Width = ship.Width
		pd.Height = ship.Height
	}
	if body, ok := components.Lookup(p, components.Body); ok {
		body.Radius = ship.Body.Radius
		body.OffsetX = ship.Body.OffsetX
		body.OffsetY = ship.Body.OffsetY
	}
	if m, ok := components.Lookup(p, components.Movement); ok {
		m.SetSpeed(ship.MovementSpeed)
		m.Base = ship.MovementSpeed
	}
	if obj, ok := components.Lookup(p, components.Object); ok && obj.Object != nil {
		size := ship.Body.Radius * 2
		obj.W, obj.H = size, size
		obj.SetShape(resolv.NewRectangle(0, 0, size, size))
		SyncObject(p)
	}
}
