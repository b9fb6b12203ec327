package systems

import (
	"testing"
	"time"

	"github.com/automoto/starshot/components"
	"github.com/automoto/starshot/effects"
	"github.com/automoto/starshot/systems/factory"
)

func TestDetectOverlapsFindsTouchingPairs(t *testing.T) {
	d := newTestDirector(t, constRand(99), nil)
	enemy := activeEnemy(t, d, 200, 200)
	near := activeShot(t, d, d.PlayerShots(), 200, 210)
	activeShot(t, d, d.PlayerShots(), 400, 500)

	got := DetectOverlaps(d.World())
	if len(got) != 1 {
		t.Fatalf("got %d overlaps, want 1: %+v", len(got), got)
	}
	if got[0].Pair != PairPlayerShotEnemy || got[0].A != near || got[0].B != enemy {
		t.Errorf("unexpected overlap %+v", got[0])
	}
}

func TestDetectOverlapsSkipsDisabledBodies(t *testing.T) {
	d := newTestDirector(t, constRand(99), nil)
	enemy := activeEnemy(t, d, 200, 200)
	activeShot(t, d, d.PlayerShots(), 200, 200)
	factory.DisableBody(enemy)

	if got := DetectOverlaps(d.World()); len(got) != 0 {
		t.Errorf("got %d overlaps with a disabled enemy", len(got))
	}
}

func TestDetectOverlapsBroadPhaseOnly(t *testing.T) {
	d := newTestDirector(t, constRand(99), nil)
	activeEnemy(t, d, 200, 200)
	// Inside the enemy's bounding box corner but outside both circles.
	activeShot(t, d, d.PlayerShots(), 224, 224)

	if got := DetectOverlaps(d.World()); len(got) != 0 {
		t.Errorf("corner contact reported as overlap: %+v", got)
	}
}

func TestStepResolvesDetectedOverlaps(t *testing.T) {
	d := newTestDirector(t, constRand(99), nil)
	player := d.Player()
	tr := components.Transform.Get(player)

	pu, _ := d.PowerUps().Get()
	factory.EnablePowerUp(d.World(), pu, tr.X, effects.NewSpeedBoost(2, time.Second))
	components.Transform.Get(pu).Y = tr.Y
	enemy := activeEnemy(t, d, 100, 100)
	activeShot(t, d, d.PlayerShots(), 100, 100)

	d.Step(0, components.InputData{})

	if components.IsActive(pu) {
		t.Error("power-up under the player was not picked up")
	}
	if got, want := components.Movement.Get(player).Speed, 2*components.Movement.Get(player).Base; got != want {
		t.Errorf("speed %v, want %v", got, want)
	}
	if components.Health.Get(enemy).Current != 2 || d.Score() != 1 {
		t.Error("shot on the enemy was not resolved")
	}
}
