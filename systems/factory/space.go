package factory

import (
	"github.com/automoto/starshot/archetypes"
	"github.com/automoto/starshot/clock"
	"github.com/automoto/starshot/components"
	"github.com/automoto/starshot/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	components.Space.SetValue(space, components.SpaceData{
		Space: resolv.NewSpace(width, height, cellWidth, cellHeight),
	})
	return space
}

func CreateClock(w donburi.World, sched *clock.Scheduler) *donburi.Entry {
	e := archetypes.Clock.Spawn(w)
	components.Clock.SetValue(e, components.ClockData{Scheduler: sched})
	return e
}

func CreateScore(w donburi.World) *donburi.Entry {
	return archetypes.Score.Spawn(w)
}

func CreateBackdrop(w donburi.World) *donburi.Entry {
	e := archetypes.Backdrop.Spawn(w)
	components.Backdrop.SetValue(e, components.BackdropData{Speed: config.Backdrop.Idle})
	return e
}
