package effects

import (
	"testing"
	"time"

	"github.com/automoto/starshot/clock"
	"github.com/automoto/starshot/components"
	"github.com/automoto/starshot/config"
	"github.com/automoto/starshot/signals"
	"github.com/automoto/starshot/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func newPlayerWorld(t *testing.T) (donburi.World, *clock.Scheduler, *donburi.Entry) {
	t.Helper()
	w := donburi.NewWorld()
	sched := clock.New()
	factory.CreateClock(w, sched)
	factory.CreateBackdrop(w)
	p := factory.CreatePlayer(w, 240, 700, nil)
	return w, sched, p
}

func speedOf(p *donburi.Entry) float64 {
	return components.Movement.Get(p).Speed
}

func TestSpeedBoostRestoresExactBaseline(t *testing.T) {
	w, sched, p := newPlayerWorld(t)
	base := speedOf(p)
	boost := NewSpeedBoost(1.5, 5*time.Second)

	boost.Apply(w, p)
	if got := speedOf(p); got != base*1.5 {
		t.Fatalf("boosted speed %v, want %v", got, base*1.5)
	}

	sched.Advance(5*time.Second - time.Millisecond)
	if speedOf(p) != base*1.5 || !components.Player.Get(p).BoostIndicator {
		t.Fatal("boost ended early")
	}
	sched.Advance(time.Millisecond)
	if got := speedOf(p); got != base {
		t.Errorf("restored speed %v, want %v", got, base)
	}
	if components.Player.Get(p).BoostIndicator {
		t.Error("indicator still shown after the boost")
	}
	if components.SpeedBoost.Get(p).Active {
		t.Error("boost state still active")
	}
}

func TestSpeedBoostReplacesLiveBoost(t *testing.T) {
	w, sched, p := newPlayerWorld(t)
	base := speedOf(p)
	boost := NewSpeedBoost(1.5, 5*time.Second)

	boost.Apply(w, p)
	sched.Advance(3 * time.Second)
	boost.Apply(w, p)
	if got := speedOf(p); got != base*1.5 {
		t.Fatalf("second boost compounded to %v, want %v", got, base*1.5)
	}

	// The first restoration would have fired here.
	sched.Advance(2 * time.Second)
	if got := speedOf(p); got != base*1.5 {
		t.Fatalf("speed %v at 5s, want the live boost", got)
	}
	sched.Advance(3 * time.Second)
	if got := speedOf(p); got != base {
		t.Errorf("speed %v after the second boost, want %v", got, base)
	}
	if sched.Pending() != 0 {
		t.Errorf("%d timers left behind", sched.Pending())
	}
}

func TestBoostIndicatorSignals(t *testing.T) {
	w, sched, p := newPlayerWorld(t)
	var got []signals.BoostIndicatorEvent
	signals.BoostIndicator.Subscribe(w, func(w donburi.World, e signals.BoostIndicatorEvent) {
		got = append(got, e)
	})

	NewSpeedBoost(1.5, 2*time.Second).Apply(w, p)
	sched.Advance(2 * time.Second)
	events.ProcessAllEvents(w)

	if len(got) != 2 {
		t.Fatalf("got %d indicator events, want 2", len(got))
	}
	if !got[0].Shown || got[0].Duration != 2*time.Second {
		t.Errorf("show event %+v", got[0])
	}
	if got[1].Shown {
		t.Errorf("hide event %+v", got[1])
	}
}

func TestSpeedBoostRampsBackdrop(t *testing.T) {
	w, sched, p := newPlayerWorld(t)
	NewSpeedBoost(1.5, 5*time.Second).Apply(w, p)

	e, _ := components.Backdrop.First(w)
	bd := components.Backdrop.Get(e)
	if bd.Tween == nil {
		t.Fatal("no backdrop tween after a boost")
	}
	v, done := bd.Tween.Update(float32(config.Backdrop.RampUp / time.Millisecond))
	if !done || float64(v) != config.Backdrop.Boosted {
		t.Errorf("ramp ended at %v (done=%v), want %v", v, done, config.Backdrop.Boosted)
	}
	bd.Speed = float64(v)

	sched.Advance(5 * time.Second)
	v, done = bd.Tween.Update(float32(config.Backdrop.RampDown / time.Millisecond))
	if !done || float64(v) != config.Backdrop.Idle {
		t.Errorf("ramp down ended at %v, want %v", v, config.Backdrop.Idle)
	}
}

func TestHealRestoresHealth(t *testing.T) {
	w, _, p := newPlayerWorld(t)
	h := components.Health.Get(p)
	h.Current = 1

	NewHeal(1).Apply(w, p)
	if h.Current != 2 {
		t.Errorf("health %d, want 2", h.Current)
	}
	NewHeal(5).Apply(w, p)
	if h.Current != h.Max {
		t.Errorf("health %d, want clamp at %d", h.Current, h.Max)
	}
}

func TestEffectKinds(t *testing.T) {
	if NewHeal(1).Kind() != components.BoostHeal || NewSpeedBoost(1, time.Second).Kind() != components.BoostSpeed {
		t.Error("effect kinds mismatched")
	}
}
