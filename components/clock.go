package components

import (
	"github.com/automoto/starshot/clock"
	"github.com/yohamta/donburi"
)

// ClockData exposes the simulation scheduler to anything holding the world.
type ClockData struct {
	*clock.Scheduler
}

var Clock = donburi.NewComponentType[ClockData]()

// SchedulerOf returns the world's scheduler, or nil when none was created.
func SchedulerOf(w donburi.World) *clock.Scheduler {
	e, ok := Clock.First(w)
	if !ok {
		return nil
	}
	return Clock.Get(e).Scheduler
}
