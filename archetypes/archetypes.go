package archetypes

import (
	"github.com/automoto/starshot/components"
	"github.com/automoto/starshot/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Body,
		components.Object,
		components.Health,
		components.Movement,
		components.Weapon,
		components.SpeedBoost,
		components.Flash,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Transform,
		components.Body,
		components.Object,
		components.Health,
		components.Movement,
		components.Weapon,
		components.Flash,
	)
	PlayerShot = newArchetype(
		tags.PlayerShot,
		components.Projectile,
		components.Transform,
		components.Body,
		components.Object,
		components.Pooled,
	)
	EnemyShot = newArchetype(
		tags.EnemyShot,
		components.Projectile,
		components.Transform,
		components.Body,
		components.Object,
		components.Pooled,
	)
	PowerUp = newArchetype(
		tags.PowerUp,
		components.PowerUp,
		components.Transform,
		components.Body,
		components.Object,
		components.Movement,
		components.Pooled,
		components.Flash,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Space = newArchetype(
		components.Space,
	)
	Score = newArchetype(
		components.Score,
	)
	Backdrop = newArchetype(
		components.Backdrop,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entry with the archetype's components plus any extras.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
