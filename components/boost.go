package components

import (
	"time"

	"github.com/automoto/starshot/clock"
	"github.com/yohamta/donburi"
)

// BoostKind enumerates every boost effect variant. New variants are added
// here and in package effects.
type BoostKind int

const (
	BoostHeal BoostKind = iota + 1
	BoostSpeed
)

func (k BoostKind) String() string {
	switch k {
	case BoostHeal:
		return "heal"
	case BoostSpeed:
		return "speed"
	}
	return "unknown"
}

// BoostEffect is a one-shot modification applied to a player on pickup.
type BoostEffect interface {
	Kind() BoostKind
	Texture() string
	Apply(w donburi.World, player *donburi.Entry)
}

// SpeedBoostData remembers a live speed boost so that a second pickup
// replaces the first instead of compounding it.
type SpeedBoostData struct {
	Active   bool
	Baseline float64
	Restore  clock.Token
	Until    time.Duration
}

var SpeedBoost = donburi.NewComponentType[SpeedBoostData]()
