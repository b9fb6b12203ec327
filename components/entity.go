package components

import (
	"github.com/yohamta/donburi"
)

// Category groups entities by the pool (and overlap group) they belong to.
type Category int

const (
	CategoryNone Category = iota
	CategoryPlayer
	CategoryPlayerShot
	CategoryEnemyShot
	CategoryEnemy
	CategorySpecialEnemy
	CategoryPowerUp
)

func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "player"
	case CategoryPlayerShot:
		return "player_shot"
	case CategoryEnemyShot:
		return "enemy_shot"
	case CategoryEnemy:
		return "enemy"
	case CategorySpecialEnemy:
		return "special_enemy"
	case CategoryPowerUp:
		return "powerup"
	}
	return "none"
}

// TransformData is an entity's position and heading. Rotation is in radians,
// measured from the +X axis, clockwise on screen (Y grows downward).
type TransformData struct {
	X, Y     float64
	Rotation float64
}

// BodyData is the collision body the overlap service reads.
type BodyData struct {
	Radius  float64
	OffsetX float64
	OffsetY float64
	Width   float64
	Height  float64
	Enabled bool
}

// PooledData marks entries owned by a fixed-capacity pool.
type PooledData struct {
	Category Category
	Active   bool
}

var Transform = donburi.NewComponentType[TransformData]()
var Body = donburi.NewComponentType[BodyData]()
var Pooled = donburi.NewComponentType[PooledData]()

// Attach registers value under kind on e, replacing any existing component
// of the same kind.
func Attach[T any](e *donburi.Entry, kind *donburi.ComponentType[T], value *T) {
	if !e.HasComponent(kind) {
		e.AddComponent(kind)
	}
	kind.Set(e, value)
}

// Lookup returns the component of the given kind, or false when e is gone or
// does not carry one.
func Lookup[T any](e *donburi.Entry, kind *donburi.ComponentType[T]) (*T, bool) {
	if e == nil || !e.Valid() || !e.HasComponent(kind) {
		return nil, false
	}
	return kind.Get(e), true
}

// IsActive reports whether e takes part in the simulation. Entries outside
// any pool are active for as long as they exist.
func IsActive(e *donburi.Entry) bool {
	if e == nil || !e.Valid() {
		return false
	}
	if p, ok := Lookup(e, Pooled); ok {
		return p.Active
	}
	return true
}

// BodyEnabled reports whether e is active and its body can be hit.
func BodyEnabled(e *donburi.Entry) bool {
	if !IsActive(e) {
		return false
	}
	b, ok := Lookup(e, Body)
	return ok && b.Enabled
}
