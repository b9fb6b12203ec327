package components

import (
	"time"

	"github.com/automoto/starshot/clock"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	ShipID   int
	Texture  string
	Width    float64
	Height   float64
	NextShot time.Duration // earliest simulation time the player may fire again

	// BoostIndicator is shown while a speed boost is live.
	BoostIndicator bool
	IndicatorTimer clock.Token

	InvulnTimer clock.Token
	Defeated    bool
}

var Player = donburi.NewComponentType[PlayerData]()
