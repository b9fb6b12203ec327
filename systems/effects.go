package systems

import (
	"time"

	"github.com/automoto/starshot/components"
	"github.com/yohamta/donburi"
)

// flash turns e's flash on for duration and runs done when it ends. A new
// flash replaces a running one, including its done callback.
func (d *Director) flash(e *donburi.Entry, duration time.Duration, done func()) {
	f, ok := components.Lookup(e, components.Flash)
	if !ok {
		if done != nil {
			done()
		}
		return
	}
	d.clock.Cancel(f.Timer)
	f.Active = true
	f.Timer = d.clock.After(duration, func() {
		if f, ok := components.Lookup(e, components.Flash); ok {
			f.Active = false
			f.Timer = 0
		}
		if done != nil {
			done()
		}
	})
}
