// Package effects implements the boost effects a power-up carries.
//
// The variant set is closed: every type here reports one of the
// components.BoostKind constants, and adding a variant means adding both.
package effects

import (
	"time"

	"github.com/automoto/starshot/components"
	"github.com/automoto/starshot/config"
	"github.com/automoto/starshot/signals"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// Heal restores Amount hit points.
type Heal struct {
	Amount int
}

func NewHeal(amount int) *Heal {
	return &Heal{Amount: amount}
}

func (h *Heal) Kind() components.BoostKind { return components.BoostHeal }
func (h *Heal) Texture() string            { return "pill_red.png" }

func (h *Heal) Apply(w donburi.World, player *donburi.Entry) {
	if health, ok := components.Lookup(player, components.Health); ok {
		health.Heal(h.Amount)
	}
}

// SpeedBoost multiplies the player's speed for Duration, then restores the
// speed the player had before any boost was live.
type SpeedBoost struct {
	Multiplier float64
	Duration   time.Duration
}

func NewSpeedBoost(multiplier float64, duration time.Duration) *SpeedBoost {
	return &SpeedBoost{Multiplier: multiplier, Duration: duration}
}

func (s *SpeedBoost) Kind() components.BoostKind { return components.BoostSpeed }
func (s *SpeedBoost) Texture() string            { return "pill_blue.png" }

// Apply replaces a boost that is still live rather than stacking on it: the
// pending restoration is canceled and the original baseline is kept.
func (s *SpeedBoost) Apply(w donburi.World, player *donburi.Entry) {
	movement, ok := components.Lookup(player, components.Movement)
	if !ok {
		return
	}
	boost, ok := components.Lookup(player, components.SpeedBoost)
	if !ok {
		return
	}
	sched := components.SchedulerOf(w)
	if sched == nil {
		return
	}

	if boost.Active {
		sched.Cancel(boost.Restore)
	} else {
		boost.Active = true
		boost.Baseline = movement.Speed
	}
	movement.SetSpeed(boost.Baseline * s.Multiplier)
	boost.Until = sched.Now() + s.Duration

	ShowBoostIndicator(w, player, s.Duration)
	rampBackdrop(w, config.Backdrop.Boosted, config.Backdrop.RampUp, ease.OutSine)

	boost.Restore = sched.After(s.Duration, func() {
		restoreSpeed(w, player)
	})
}

func restoreSpeed(w donburi.World, player *donburi.Entry) {
	boost, ok := components.Lookup(player, components.SpeedBoost)
	if !ok || !boost.Active {
		return
	}
	if movement, ok := components.Lookup(player, components.Movement); ok {
		movement.SetSpeed(boost.Baseline)
	}
	boost.Active = false
	boost.Restore = 0
	rampBackdrop(w, config.Backdrop.Idle, config.Backdrop.RampDown, ease.InSine)
}

// ShowBoostIndicator turns the player's boost indicator on for duration.
// Showing it again before it expires restarts the countdown.
func ShowBoostIndicator(w donburi.World, player *donburi.Entry, duration time.Duration) {
	pd, ok := components.Lookup(player, components.Player)
	if !ok {
		return
	}
	sched := components.SchedulerOf(w)
	if sched == nil {
		return
	}

	sched.Cancel(pd.IndicatorTimer)
	pd.BoostIndicator = true
	signals.BoostIndicator.Publish(w, signals.BoostIndicatorEvent{
		Entity:   player,
		Shown:    true,
		Duration: duration,
	})

	if duration <= 0 {
		return
	}
	pd.IndicatorTimer = sched.After(duration, func() {
		HideBoostIndicator(w, player)
	})
}

// HideBoostIndicator turns the indicator off immediately.
func HideBoostIndicator(w donburi.World, player *donburi.Entry) {
	pd, ok := components.Lookup(player, components.Player)
	if !ok || !pd.BoostIndicator {
		return
	}
	if sched := components.SchedulerOf(w); sched != nil {
		sched.Cancel(pd.IndicatorTimer)
	}
	pd.BoostIndicator = false
	pd.IndicatorTimer = 0
	signals.BoostIndicator.Publish(w, signals.BoostIndicatorEvent{Entity: player})
}

// rampBackdrop tweens the backdrop scroll speed from its current value.
// Durations are in milliseconds, matching UpdateBackdrop.
func rampBackdrop(w donburi.World, to float64, over time.Duration, fn ease.TweenFunc) {
	e, ok := components.Backdrop.First(w)
	if !ok {
		return
	}
	bd := components.Backdrop.Get(e)
	ms := float32(over) / float32(time.Millisecond)
	bd.Tween = gween.New(float32(bd.Speed), float32(to), ms, fn)
}
