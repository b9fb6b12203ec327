package components

import (
	"github.com/automoto/starshot/clock"
	"github.com/automoto/starshot/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Variant    string                     // key into config.Enemies
	Config     *config.EnemyVariantConfig // Cached variant record
	Special    bool                       // true for patterned enemies created outside the pool
	StartX     float64                    // sine path origin
	Elapsed    float64                    // seconds since activation
	ShootTimer clock.Token
	Dying      bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
