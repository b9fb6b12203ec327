package scenes

import (
	"github.com/automoto/starshot/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var shipKeys = map[ebiten.Key]int{
	ebiten.Key1: 1,
	ebiten.Key2: 2,
	ebiten.Key3: 3,
}

// pollInput reads the keyboard into the core's per-frame input signals.
func pollInput() components.InputData {
	in := components.InputData{
		Left:      ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:     ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:      ebiten.IsKeyPressed(ebiten.KeySpace),
		Precision: ebiten.IsKeyPressed(ebiten.KeyShift),
	}
	for key, ship := range shipKeys {
		if inpututil.IsKeyJustPressed(key) {
			in.Ship = ship
		}
	}
	return in
}
