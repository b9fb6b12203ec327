// Package signals declares the intents the gameplay core publishes for a
// presentation layer. Events are queued on the world and delivered when
// events.ProcessAllEvents runs at the end of a frame.
package signals

import (
	"time"

	"github.com/automoto/starshot/components"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SpawnEvent is published whenever the director activates an entity.
type SpawnEvent struct {
	ID       uuid.UUID
	Entity   *donburi.Entry
	Category components.Category
	Effect   components.BoostKind // set for power-ups
}

// DestroyedEvent is published when an entity is removed after losing all
// of its health.
type DestroyedEvent struct {
	Entity   *donburi.Entry
	Category components.Category
	X, Y     float64
}

// HealthChangedEvent mirrors a Health change notification.
type HealthChangedEvent struct {
	Entity  *donburi.Entry
	Current int
	Max     int
}

// ScoreEvent is published for every score increment.
type ScoreEvent struct {
	Delta int
	Total int
}

// BoostIndicatorEvent shows or hides the player's boost indicator.
type BoostIndicatorEvent struct {
	Entity   *donburi.Entry
	Shown    bool
	Duration time.Duration
}

// ShakeEvent requests a camera shake equivalent.
type ShakeEvent struct {
	Duration  time.Duration
	Intensity float64
}

// FlashEvent requests a full-screen flash equivalent.
type FlashEvent struct {
	Duration time.Duration
}

// PlayerDefeatedEvent is published once when the player's health reaches 0.
type PlayerDefeatedEvent struct {
	Entity *donburi.Entry
}

var (
	Spawned        = events.NewEventType[SpawnEvent]()
	Destroyed      = events.NewEventType[DestroyedEvent]()
	HealthChanged  = events.NewEventType[HealthChangedEvent]()
	ScoreChanged   = events.NewEventType[ScoreEvent]()
	BoostIndicator = events.NewEventType[BoostIndicatorEvent]()
	CameraShake    = events.NewEventType[ShakeEvent]()
	CameraFlash    = events.NewEventType[FlashEvent]()
	PlayerDefeated = events.NewEventType[PlayerDefeatedEvent]()
)
