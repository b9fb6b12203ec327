package systems

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/automoto/starshot/clock"
	"github.com/automoto/starshot/components"
	"github.com/automoto/starshot/config"
	"github.com/automoto/starshot/effects"
	"github.com/automoto/starshot/signals"
	"github.com/automoto/starshot/systems/factory"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Random is the uniform integer source spawning draws from.
type Random interface {
	IntN(n int) int
}

// PlayArea is the visible rectangle, origin at the top left.
type PlayArea struct {
	Width, Height float64
}

// spaceCell is the resolv grid cell size in pixels.
const spaceCell = 32

type DirectorOptions struct {
	PlayArea PlayArea            // zero uses config.C
	Rand     Random              // nil uses a time-seeded PCG
	Logger   *log.Logger         // nil uses log.Default()
	Spawn    *config.SpawnConfig // nil uses config.Spawn
	Overlaps OverlapSource       // nil uses DetectOverlaps
}

// Director owns every pool, runs the spawn timers and resolves collisions.
// It is the only code that moves entries between a pool's partitions.
type Director struct {
	world    donburi.World
	clock    *clock.Scheduler
	rng      Random
	logger   *log.Logger
	spawn    config.SpawnConfig
	area     PlayArea
	overlaps OverlapSource

	player      *donburi.Entry
	playerShots *Pool
	enemyShots  *Pool
	enemies     *Pool
	powerUps    *Pool
	specials    []*donburi.Entry

	specialSpawned bool
	lastSpecial    time.Duration

	timers []clock.Token
}

// NewDirector prepares w for a session: world singletons, pools and the
// player. Spawning starts with Start.
func NewDirector(w donburi.World, opts DirectorOptions) *Director {
	d := &Director{
		world:    w,
		rng:      opts.Rand,
		logger:   opts.Logger,
		area:     opts.PlayArea,
		overlaps: opts.Overlaps,
		spawn:    config.Spawn,
	}
	if opts.Spawn != nil {
		d.spawn = *opts.Spawn
	}
	if d.area.Width <= 0 || d.area.Height <= 0 {
		d.area = PlayArea{Width: float64(config.C.Width), Height: float64(config.C.Height)}
	}
	if d.rng == nil {
		d.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed))
	}
	if d.logger == nil {
		d.logger = log.Default()
	}
	if d.overlaps == nil {
		d.overlaps = OverlapFunc(DetectOverlaps)
	}

	d.initWorld()
	d.initPools()
	d.initPlayer()
	return d
}

func (d *Director) initWorld() {
	if d.clock = components.SchedulerOf(d.world); d.clock == nil {
		d.clock = clock.New()
		factory.CreateClock(d.world, d.clock)
	}
	if _, ok := components.Space.First(d.world); !ok {
		factory.CreateSpace(d.world, int(d.area.Width), int(d.area.Height), spaceCell, spaceCell)
	}
	if _, ok := components.Score.First(d.world); !ok {
		factory.CreateScore(d.world)
	}
	if _, ok := components.Backdrop.First(d.world); !ok {
		factory.CreateBackdrop(d.world)
	}
}

func (d *Director) initPools() {
	d.playerShots = NewPool(components.CategoryPlayerShot, d.spawn.PlayerShotPool, func() *donburi.Entry {
		return factory.CreatePlayerShot(d.world)
	})
	d.enemyShots = NewPool(components.CategoryEnemyShot, d.spawn.EnemyShotPool, func() *donburi.Entry {
		return factory.CreateEnemyShot(d.world)
	})
	d.enemies = NewPool(components.CategoryEnemy, d.spawn.EnemyCap, func() *donburi.Entry {
		e := factory.CreateEnemy(d.world, d.spawn.GenericVariant, false, d.enemyShots)
		d.watchEnemy(e)
		return e
	})
	d.powerUps = NewPool(components.CategoryPowerUp, d.spawn.PowerUpPool, func() *donburi.Entry {
		return factory.CreatePowerUp(d.world)
	})
}

func (d *Director) initPlayer() {
	ship := config.Ship(config.DefaultShip)
	d.player = factory.CreatePlayer(d.world, d.area.Width/2, d.area.Height-ship.Height*1.5, d.playerShots)
	d.watchPlayer(d.player)
}

// Start arms the enemy and power-up spawn timers. Calling it twice is a
// no-op.
func (d *Director) Start() {
	if len(d.timers) > 0 {
		return
	}
	d.timers = append(d.timers,
		d.clock.Every(d.spawn.EnemyInterval, d.spawnEnemy),
		d.clock.Every(d.spawn.HealInterval, func() { d.spawnPowerUp(components.BoostHeal) }),
		d.clock.Every(d.spawn.SpeedInterval, func() { d.spawnPowerUp(components.BoostSpeed) }),
	)
	d.logger.Printf("[Director] started: enemy every %v, heal every %v, speed every %v",
		d.spawn.EnemyInterval, d.spawn.HealInterval, d.spawn.SpeedInterval)
}

// Stop cancels the spawn timers. Live entities keep their own timers.
func (d *Director) Stop() {
	for _, t := range d.timers {
		d.clock.Cancel(t)
	}
	d.timers = nil
}

// Update advances the simulation by dt: due callbacks first, then every
// active entity, then delivery of the events queued this frame.
func (d *Director) Update(dt time.Duration, in components.InputData) {
	d.clock.Advance(dt)

	ms := float64(dt) / float64(time.Millisecond)
	d.updatePlayer(ms, in)
	d.updateEnemies(ms)
	UpdateProjectiles(d.playerShots, d.area, ms)
	UpdateProjectiles(d.enemyShots, d.area, ms)
	UpdatePowerUps(d.powerUps, d.area, ms)
	UpdateBackdrop(d.world, ms)
	syncObjects(d.world)

	events.ProcessAllEvents(d.world)
}

// Step runs Update and resolves the overlaps reported for the new
// positions, in order, within the same frame.
func (d *Director) Step(dt time.Duration, in components.InputData) {
	d.Update(dt, in)
	for _, o := range d.overlaps.Overlaps(d.world) {
		d.ResolveOverlap(o)
	}
	events.ProcessAllEvents(d.world)
}

func (d *Director) World() donburi.World { return d.world }
func (d *Director) Clock() *clock.Scheduler { return d.clock }
func (d *Director) Player() *donburi.Entry { return d.player }
func (d *Director) PlayerShots() *Pool { return d.playerShots }
func (d *Director) EnemyShots() *Pool { return d.enemyShots }
func (d *Director) Enemies() *Pool { return d.enemies }
func (d *Director) PowerUps() *Pool { return d.powerUps }
func (d *Director) Area() PlayArea { return d.area }
func (d *Director) Specials() []*donburi.Entry { return append([]*donburi.Entry(nil), d.specials...) }

// Score returns the current score.
func (d *Director) Score() int {
	e, ok := components.Score.First(d.world)
	if !ok {
		return 0
	}
	return components.Score.Get(e).Value
}

// ActiveEnemies counts pooled and special enemies together.
func (d *Director) ActiveEnemies() int {
	return d.enemies.CountActive() + len(d.specials)
}

func (d *Director) spawnEnemy() {
	if d.ActiveEnemies() >= d.spawn.EnemyCap {
		return
	}
	if d.rollSpecial() {
		d.spawnSpecial()
		return
	}

	e, ok := d.enemies.Get()
	if !ok {
		return
	}
	x := d.randomX()
	factory.EnableEnemy(d.world, e, x, 0)
	d.armEnemy(e)
	d.publishSpawn(e, components.CategoryEnemy, 0)
}

// rollSpecial reports whether this spawn becomes the special variant. The
// roll is always drawn so the random stream does not depend on the gates.
func (d *Director) rollSpecial() bool {
	hit := d.rng.IntN(100) < d.spawn.SpecialChance
	if !hit || len(d.specials) > 0 {
		return false
	}
	if d.specialSpawned && d.clock.Now()-d.lastSpecial < d.spawn.SpecialCooldown {
		return false
	}
	return true
}

func (d *Director) spawnSpecial() {
	e := factory.CreateEnemy(d.world, d.spawn.SpecialVariant, true, d.enemyShots)
	d.watchEnemy(e)

	radius := components.Body.Get(e).Radius
	x := d.randomX()
	factory.EnableEnemy(d.world, e, x, -radius*2)
	d.armEnemy(e)

	d.specials = append(d.specials, e)
	d.specialSpawned = true
	d.lastSpecial = d.clock.Now()
	d.publishSpawn(e, components.CategorySpecialEnemy, 0)
}

func (d *Director) spawnPowerUp(kind components.BoostKind) {
	if d.countPowerUps(kind) >= d.powerUpCap(kind) {
		return
	}
	e, ok := d.powerUps.Get()
	if !ok {
		return
	}
	factory.EnablePowerUp(d.world, e, d.randomX(), newEffect(kind))
	d.publishSpawn(e, components.CategoryPowerUp, kind)
}

func (d *Director) powerUpCap(kind components.BoostKind) int {
	switch kind {
	case components.BoostHeal:
		return d.spawn.HealCap
	case components.BoostSpeed:
		return d.spawn.SpeedCap
	}
	return 0
}

// countPowerUps returns how many active power-ups carry kind.
func (d *Director) countPowerUps(kind components.BoostKind) int {
	n := 0
	for _, e := range d.powerUps.Active() {
		if pu := components.PowerUp.Get(e); pu.Effect != nil && pu.Effect.Kind() == kind {
			n++
		}
	}
	return n
}

func newEffect(kind components.BoostKind) components.BoostEffect {
	switch kind {
	case components.BoostSpeed:
		return effects.NewSpeedBoost(config.PowerUp.Boost, config.PowerUp.BoostFor)
	default:
		return effects.NewHeal(config.PowerUp.Heal)
	}
}

// randomX is uniform over [margin, width-margin].
func (d *Director) randomX() float64 {
	margin := d.spawn.EdgeMargin
	span := int(d.area.Width) - 2*margin + 1
	if span <= 0 {
		return d.area.Width / 2
	}
	return float64(margin + d.rng.IntN(span))
}

func (d *Director) publishSpawn(e *donburi.Entry, category components.Category, kind components.BoostKind) {
	id := uuid.New()
	t := components.Transform.Get(e)
	if kind != 0 {
		d.logger.Printf("[Director] %s (%s) spawned at x=%.0f id=%s", category, kind, t.X, id)
	} else {
		d.logger.Printf("[Director] %s spawned at x=%.0f id=%s", category, t.X, id)
	}
	signals.Spawned.Publish(d.world, signals.SpawnEvent{
		ID:       id,
		Entity:   e,
		Category: category,
		Effect:   kind,
	})
}
