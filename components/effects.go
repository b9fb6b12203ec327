package components

import (
	"github.com/automoto/starshot/clock"
	"github.com/yohamta/donburi"
)

// FlashData tracks the hit flash of an entity
type FlashData struct {
	Active bool
	Color  uint32 // fill color while flashing
	Timer  clock.Token
}

var Flash = donburi.NewComponentType[FlashData]()
