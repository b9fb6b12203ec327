package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BackdropData is the scrolling background's speed factor. Tween, when set,
// drives Speed until it finishes.
type BackdropData struct {
	Speed float64
	Tween *gween.Tween
}

var Backdrop = donburi.NewComponentType[BackdropData]()
