package scenes

import (
	"image/color"
	"sync"
	"time"

	"github.com/automoto/starshot/signals"
	"github.com/automoto/starshot/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// restartDelay is how long the defeated screen stays up.
const restartDelay = 2 * time.Second

// ShooterScene runs one session of the gameplay core.
type ShooterScene struct {
	ecs          *ecs.ECS
	director     *systems.Director
	sceneChanger SceneChanger
	once         sync.Once

	fx feedback
}

func NewShooterScene(sc SceneChanger) *ShooterScene {
	return &ShooterScene{sceneChanger: sc}
}

func (ss *ShooterScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()

	if ss.fx.defeated && ss.director.Clock().Now()-ss.fx.defeatedAt >= restartDelay {
		ss.director.Stop()
		ss.sceneChanger.ChangeScene(NewShooterScene(ss.sceneChanger))
	}
}

func (ss *ShooterScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

func (ss *ShooterScene) configure() {
	world := donburi.NewWorld()
	ss.ecs = ecs.NewECS(world)
	ss.director = systems.NewDirector(world, systems.DirectorOptions{})

	ss.subscribe(world)

	ss.ecs.AddSystem(ss.step)
	ss.ecs.AddRenderer(layerDefault, ss.draw)

	ss.director.Start()
}

func (ss *ShooterScene) step(e *ecs.ECS) {
	dt := time.Second / time.Duration(ebiten.TPS())
	ss.director.Step(dt, pollInput())
}

func (ss *ShooterScene) subscribe(w donburi.World) {
	clock := ss.director.Clock()
	signals.CameraShake.Subscribe(w, func(w donburi.World, e signals.ShakeEvent) {
		ss.fx.shakeUntil = clock.Now() + e.Duration
		ss.fx.shakeIntensity = e.Intensity
	})
	signals.CameraFlash.Subscribe(w, func(w donburi.World, e signals.FlashEvent) {
		ss.fx.flashUntil = clock.Now() + e.Duration
	})
	signals.BoostIndicator.Subscribe(w, func(w donburi.World, e signals.BoostIndicatorEvent) {
		ss.fx.boosted = e.Shown
	})
	signals.PlayerDefeated.Subscribe(w, func(w donburi.World, e signals.PlayerDefeatedEvent) {
		ss.fx.defeated = true
		ss.fx.defeatedAt = clock.Now()
	})
}
