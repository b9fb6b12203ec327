package systems

import (
	"testing"
	"time"

	"github.com/automoto/starshot/components"
	"github.com/automoto/starshot/config"
	"github.com/automoto/starshot/effects"
	"github.com/automoto/starshot/signals"
	"github.com/automoto/starshot/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func activeEnemy(t *testing.T, d *Director, x, y float64) *donburi.Entry {
	t.Helper()
	e, ok := d.Enemies().Get()
	if !ok {
		t.Fatal("enemy pool exhausted")
	}
	factory.EnableEnemy(d.World(), e, x, y)
	return e
}

func activeShot(t *testing.T, d *Director, pool *Pool, x, y float64) *donburi.Entry {
	t.Helper()
	e, ok := pool.Get()
	if !ok {
		t.Fatal("shot pool exhausted")
	}
	factory.EnableProjectile(d.World(), e, x, y, 0, -1, config.PlayerBullet)
	return e
}

func TestPlayerShotHitsEnemy(t *testing.T) {
	d := newTestDirector(t, constRand(99), nil)
	enemy := activeEnemy(t, d, 200, 200)
	shot := activeShot(t, d, d.PlayerShots(), 200, 210)

	var scores []signals.ScoreEvent
	signals.ScoreChanged.Subscribe(d.World(), func(w donburi.World, e signals.ScoreEvent) {
		scores = append(scores, e)
	})

	d.ResolveOverlap(Overlap{Pair: PairPlayerShotEnemy, A: shot, B: enemy})

	if h := components.Health.Get(enemy); h.Current != 2 {
		t.Errorf("enemy health %d, want 2", h.Current)
	}
	if components.IsActive(shot) {
		t.Error("projectile still active after the hit")
	}
	if d.Score() != 1 {
		t.Errorf("score %d, want 1", d.Score())
	}
	events.ProcessAllEvents(d.World())
	if len(scores) != 1 || scores[0].Delta != 1 || scores[0].Total != 1 {
		t.Errorf("score events %+v", scores)
	}
	if !components.Flash.Get(enemy).Active {
		t.Error("hit enemy should flash")
	}
}

func TestEnemyDestroyedWhenFlashEnds(t *testing.T) {
	d := newTestDirector(t, constRand(99), nil)
	enemy := activeEnemy(t, d, 200, 200)
	components.Weapon.Get(enemy).Enabled = false

	destroyed := 0
	signals.Destroyed.Subscribe(d.World(), func(w donburi.World, e signals.DestroyedEvent) {
		destroyed++
	})

	for i := 0; i < 3; i++ {
		shot := activeShot(t, d, d.PlayerShots(), 200, 200)
		d.ResolveOverlap(Overlap{Pair: PairPlayerShotEnemy, A: shot, B: enemy})
	}
	if components.BodyEnabled(enemy) {
		t.Fatal("dead enemy body should be disabled at once")
	}
	if !components.IsActive(enemy) {
		t.Fatal("dead enemy should stay active until its flash ends")
	}

	d.Update(config.Combat.FlashDuration, components.InputData{})
	if components.IsActive(enemy) {
		t.Error("enemy still active after its flash ended")
	}
	if destroyed != 1 {
		t.Errorf("destroyed published %d times, want 1", destroyed)
	}
	if d.Score() != 3 {
		t.Errorf("score %d, want 3", d.Score())
	}
}

func TestContactIsLethalForEnemy(t *testing.T) {
	d := newTestDirector(t, constRand(99), nil)
	enemy := activeEnemy(t, d, 200, 200)
	player := d.Player()

	var shakes []signals.ShakeEvent
	signals.CameraShake.Subscribe(d.World(), func(w donburi.World, e signals.ShakeEvent) {
		shakes = append(shakes, e)
	})

	for _, start := range []int{3, 1} {
		components.Health.Get(enemy).Current = start
		d.ResolveOverlap(Overlap{Pair: PairPlayerEnemy, A: player, B: enemy})
		if h := components.Health.Get(enemy); h.Current != 0 {
			t.Errorf("start %d: enemy health %d, want 0", start, h.Current)
		}
		if start == 3 {
			if h := components.Health.Get(player); h.Current != 2 {
				t.Errorf("player health %d, want 2", h.Current)
			}
		}
		// Recycle the enemy for the next case.
		d.Update(config.Combat.InvulnDuration, components.InputData{})
		enemy = activeEnemy(t, d, 200, 200)
	}

	if len(shakes) == 0 || shakes[0].Intensity != config.Combat.ContactShake.Intensity {
		t.Errorf("shake events %+v", shakes)
	}
}

func TestEnemyShotHitsPlayerThenInvulnerable(t *testing.T) {
	d := newTestDirector(t, constRand(99), nil)
	player := d.Player()
	tr := components.Transform.Get(player)

	var shakes []signals.ShakeEvent
	signals.CameraShake.Subscribe(d.World(), func(w donburi.World, e signals.ShakeEvent) {
		shakes = append(shakes, e)
	})

	first := activeShot(t, d, d.EnemyShots(), tr.X, tr.Y)
	second := activeShot(t, d, d.EnemyShots(), tr.X, tr.Y)
	d.ResolveOverlap(Overlap{Pair: PairEnemyShotPlayer, A: first, B: player})
	d.ResolveOverlap(Overlap{Pair: PairEnemyShotPlayer, A: second, B: player})

	if h := components.Health.Get(player); h.Current != 2 {
		t.Fatalf("player health %d, want 2", h.Current)
	}
	if components.IsActive(first) || !components.IsActive(second) {
		t.Error("only the first shot should be consumed")
	}

	events.ProcessAllEvents(d.World())
	if len(shakes) != 1 || shakes[0].Intensity != config.Combat.ShotShake.Intensity {
		t.Errorf("shake events %+v", shakes)
	}

	d.Update(config.Combat.InvulnDuration, components.InputData{})
	if !components.BodyEnabled(player) {
		t.Error("player body should come back after the invulnerability window")
	}
}

func TestPlayerDefeatedOnce(t *testing.T) {
	d := newTestDirector(t, constRand(99), nil)
	player := d.Player()
	components.Health.Get(player).Current = 1

	defeated := 0
	signals.PlayerDefeated.Subscribe(d.World(), func(w donburi.World, e signals.PlayerDefeatedEvent) {
		defeated++
	})

	shot := activeShot(t, d, d.EnemyShots(), 0, 0)
	d.ResolveOverlap(Overlap{Pair: PairEnemyShotPlayer, A: shot, B: player})
	d.Update(time.Second, components.InputData{Fire: true})

	if defeated != 1 {
		t.Errorf("defeat published %d times, want 1", defeated)
	}
	if components.BodyEnabled(player) {
		t.Error("defeated player should stay untouchable")
	}
	if d.PlayerShots().CountActive() != 0 {
		t.Error("defeated player fired")
	}
}

func TestPickupAppliesEffect(t *testing.T) {
	d := newTestDirector(t, constRand(99), nil)
	player := d.Player()
	components.Health.Get(player).Current = 2

	e, _ := d.PowerUps().Get()
	factory.EnablePowerUp(d.World(), e, 200, effects.NewHeal(1))

	flashes := 0
	signals.CameraFlash.Subscribe(d.World(), func(w donburi.World, e signals.FlashEvent) {
		flashes++
	})

	d.ResolveOverlap(Overlap{Pair: PairPlayerPowerUp, A: player, B: e})
	events.ProcessAllEvents(d.World())

	if h := components.Health.Get(player); h.Current != 3 {
		t.Errorf("player health %d, want 3", h.Current)
	}
	if components.IsActive(e) || components.PowerUp.Get(e).Effect != nil {
		t.Error("power-up still active after pickup")
	}
	if flashes != 1 {
		t.Errorf("flash published %d times, want 1", flashes)
	}
}

func TestInactiveEntitiesAreIgnored(t *testing.T) {
	d := newTestDirector(t, constRand(99), nil)
	enemy := activeEnemy(t, d, 200, 200)
	shot := activeShot(t, d, d.PlayerShots(), 200, 200)
	releaseProjectile(d.PlayerShots(), shot)

	d.ResolveOverlap(Overlap{Pair: PairPlayerShotEnemy, A: shot, B: enemy})
	if components.Health.Get(enemy).Current != 3 || d.Score() != 0 {
		t.Error("a released shot still dealt damage")
	}
}

func TestKilledEnemyReturnsFreshFromPool(t *testing.T) {
	d := newTestDirector(t, constRand(99), nil)
	enemy := activeEnemy(t, d, 200, 200)
	d.ResolveOverlap(Overlap{Pair: PairPlayerEnemy, A: d.Player(), B: enemy})
	d.Update(config.Combat.FlashDuration, components.InputData{})
	if components.IsActive(enemy) {
		t.Fatal("killed enemy was not released")
	}

	var changes []signals.HealthChangedEvent
	signals.HealthChanged.Subscribe(d.World(), func(w donburi.World, e signals.HealthChangedEvent) {
		if e.Entity == enemy {
			changes = append(changes, e)
		}
	})

	again := activeEnemy(t, d, 100, 100)
	if again != enemy {
		t.Fatal("pool handed out a different entry")
	}
	events.ProcessAllEvents(d.World())
	if len(changes) != 0 {
		t.Fatalf("respawn published %d health changes, want 0", len(changes))
	}

	h := components.Health.Get(again)
	if h.Current != h.Max {
		t.Errorf("health %d/%d after respawn", h.Current, h.Max)
	}
	if components.Enemy.Get(again).Dying {
		t.Error("respawned enemy still dying")
	}
	if !components.BodyEnabled(again) {
		t.Error("respawned enemy body disabled")
	}

	h.Damage(1)
	events.ProcessAllEvents(d.World())
	if len(changes) != 1 {
		t.Errorf("one hit published %d health changes, want 1", len(changes))
	}
}

func TestDyingEnemyLeavingScreenIsDestroyed(t *testing.T) {
	d := newTestDirector(t, constRand(99), nil)
	// One frame of fall takes it past the bottom edge.
	enemy := activeEnemy(t, d, 200, 800+47)
	components.Weapon.Get(enemy).Enabled = false

	destroyed := 0
	signals.Destroyed.Subscribe(d.World(), func(w donburi.World, e signals.DestroyedEvent) {
		destroyed++
	})

	d.ResolveOverlap(Overlap{Pair: PairPlayerEnemy, A: d.Player(), B: enemy})
	d.Update(16*time.Millisecond, components.InputData{})
	if components.IsActive(enemy) {
		t.Fatal("enemy still active below the screen")
	}
	if destroyed != 1 {
		t.Fatalf("destroyed published %d times, want 1", destroyed)
	}

	d.Update(config.Combat.FlashDuration, components.InputData{})
	if destroyed != 1 {
		t.Errorf("destroyed published %d times after the flash window, want 1", destroyed)
	}
}
