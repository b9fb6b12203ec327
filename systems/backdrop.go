package systems

import (
	"github.com/automoto/starshot/components"
	"github.com/yohamta/donburi"
)

// UpdateBackdrop steps the backdrop speed tween by ms milliseconds.
func UpdateBackdrop(w donburi.World, ms float64) {
	e, ok := components.Backdrop.First(w)
	if !ok {
		return
	}
	bd := components.Backdrop.Get(e)
	if bd.Tween == nil {
		return
	}
	v, finished := bd.Tween.Update(float32(ms))
	bd.Speed = float64(v)
	if finished {
		bd.Tween = nil
	}
}
