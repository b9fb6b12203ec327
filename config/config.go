package config

import "time"

// BodyConfig describes an entity's collision circle relative to its origin.
type BodyConfig struct {
	Radius  float64 `json:"radius"`
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
}

// PlayerShipConfig is one selectable player ship.
type PlayerShipConfig struct {
	Texture       string     `json:"texture"`
	Body          BodyConfig `json:"body"`
	MovementSpeed float64    `json:"movementSpeed"` // pixels per millisecond
	Width         float64    `json:"width"`
	Height        float64    `json:"height"`
}

// BulletConfig is the template a weapon arms each projectile with.
type BulletConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Color  uint32  `json:"color"`
	Speed  float64 `json:"speed"` // pixels per second
	Damage int     `json:"damage"`
}

// EnemyWeaponConfig describes how an enemy variant fires.
type EnemyWeaponConfig struct {
	Type        string  `json:"type"`       // "single" or "spread"
	RateOfFire  float64 `json:"rateOfFire"` // seconds between shots
	Count       int     `json:"count"`
	AngleStart  float64 `json:"angleStart"` // degrees
	AngleEnd    float64 `json:"angleEnd"`   // degrees
	BulletTint  uint32  `json:"bulletTint"`
	BulletSpeed float64 `json:"bulletSpeed"`
}

// EnemyMovementConfig parameterises the sine path of patterned enemies.
type EnemyMovementConfig struct {
	Amplitude float64 `json:"amplitude"` // pixels
	Frequency float64 `json:"frequency"` // radians per second
}

// EnemyVariantConfig is one row of the enemy table.
type EnemyVariantConfig struct {
	Texture  string              `json:"texture"`
	HP       int                 `json:"hp"`
	Speed    float64             `json:"speed"` // fall speed, pixels per second
	Radius   float64             `json:"radius"`
	Weapon   EnemyWeaponConfig   `json:"weapon"`
	Movement EnemyMovementConfig `json:"movement"`
}

// SpawnConfig contains the spawn director's timers and caps.
type SpawnConfig struct {
	EnemyInterval   time.Duration
	EnemyCap        int
	SpecialChance   int // percent
	SpecialCooldown time.Duration
	SpecialVariant  string
	GenericVariant  string

	HealInterval  time.Duration
	HealCap       int
	SpeedInterval time.Duration
	SpeedCap      int

	// EdgeMargin keeps spawn positions away from the play area's sides.
	EdgeMargin int

	PlayerShotPool int
	EnemyShotPool  int
	PowerUpPool    int
}

// CombatConfig contains player combat tuning and feedback values.
type CombatConfig struct {
	PlayerHealth     int
	PlayerRateOfFire time.Duration
	PlayerRotation   float64 // degrees, -90 faces up
	InvulnDuration   time.Duration
	FlashDuration    time.Duration
	ContactDamage    int

	ShotShake    ShakeConfig
	ContactShake ShakeConfig
	PickupFlash  time.Duration
}

// ShakeConfig is the camera shake equivalent requested on a hit.
type ShakeConfig struct {
	Duration  time.Duration
	Intensity float64
}

// PowerUpConfig contains power-up entity tuning.
type PowerUpConfig struct {
	Speed    float64 // pixels per millisecond
	Size     float64
	Rotation float64 // degrees
	Heal     int
	Boost    float64
	BoostFor time.Duration
}

// BackdropConfig controls the scrolling backdrop reacting to speed boosts.
type BackdropConfig struct {
	Idle     float64
	Boosted  float64
	RampUp   time.Duration
	RampDown time.Duration
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Ships map[int]PlayerShipConfig
var Enemies map[string]EnemyVariantConfig
var PlayerBullet BulletConfig
var Spawn SpawnConfig
var Combat CombatConfig
var PowerUp PowerUpConfig
var Backdrop BackdropConfig

// DefaultShip is used when a ship lookup misses.
const DefaultShip = 1

// DefaultEnemy is used when an enemy variant lookup misses.
const DefaultEnemy = "basic"

// Ship returns the ship record for id, or the DefaultShip record.
func Ship(id int) PlayerShipConfig {
	if s, ok := Ships[id]; ok {
		return s
	}
	return Ships[DefaultShip]
}

// EnemyVariant returns the named enemy record, or the DefaultEnemy record.
func EnemyVariant(key string) EnemyVariantConfig {
	if e, ok := Enemies[key]; ok {
		return e
	}
	return Enemies[DefaultEnemy]
}

func init() {
	C = &Config{
		Width:  480,
		Height: 800,
	}

	Ships = map[int]PlayerShipConfig{
		1: {
			Texture:       "ship1.png",
			Body:          BodyConfig{Radius: 24, OffsetX: 4, OffsetY: 4},
			MovementSpeed: 0.5,
			Width:         56,
			Height:        56,
		},
		2: {
			Texture:       "ship2.png",
			Body:          BodyConfig{Radius: 22, OffsetX: 6, OffsetY: 6},
			MovementSpeed: 0.6,
			Width:         52,
			Height:        52,
		},
		3: {
			Texture:       "ship3.png",
			Body:          BodyConfig{Radius: 28, OffsetX: 2, OffsetY: 2},
			MovementSpeed: 0.4,
			Width:         64,
			Height:        64,
		},
	}

	Enemies = map[string]EnemyVariantConfig{
		"basic": {
			Texture: "ufoRed.png",
			HP:      3,
			Speed:   120,
			Radius:  24,
			Weapon: EnemyWeaponConfig{
				Type:        "single",
				RateOfFire:  1.5,
				Count:       1,
				BulletTint:  0xf25f5c,
				BulletSpeed: 250,
			},
		},
		"sineSpread": {
			Texture: "enemyBlack1.png",
			HP:      3,
			Speed:   80,
			Radius:  26,
			Weapon: EnemyWeaponConfig{
				Type:        "spread",
				RateOfFire:  1.5,
				Count:       3,
				AngleStart:  -15,
				AngleEnd:    15,
				BulletTint:  0xf25f5c,
				BulletSpeed: 250,
			},
			Movement: EnemyMovementConfig{
				Amplitude: 120,
				Frequency: 2,
			},
		},
	}

	PlayerBullet = BulletConfig{
		Width:  12,
		Height: 4,
		Color:  0xffe066,
		Speed:  1024,
		Damage: 1,
	}

	Spawn = SpawnConfig{
		EnemyInterval:   1500 * time.Millisecond,
		EnemyCap:        5,
		SpecialChance:   5,
		SpecialCooldown: 20 * time.Second,
		SpecialVariant:  "sineSpread",
		GenericVariant:  "basic",

		HealInterval:  10 * time.Second,
		HealCap:       1,
		SpeedInterval: 15 * time.Second,
		SpeedCap:      2,

		EdgeMargin: 64,

		PlayerShotPool: 64,
		EnemyShotPool:  256,
		PowerUpPool:    4,
	}

	Combat = CombatConfig{
		PlayerHealth:     3,
		PlayerRateOfFire: 500 * time.Millisecond,
		PlayerRotation:   -90,
		InvulnDuration:   50 * time.Millisecond,
		FlashDuration:    50 * time.Millisecond,
		ContactDamage:    1,

		ShotShake:    ShakeConfig{Duration: 100 * time.Millisecond, Intensity: 0.01},
		ContactShake: ShakeConfig{Duration: 100 * time.Millisecond, Intensity: 0.03},
		PickupFlash:  100 * time.Millisecond,
	}

	PowerUp = PowerUpConfig{
		Speed:    0.4,
		Size:     40,
		Rotation: 90,
		Heal:     1,
		Boost:    1.5,
		BoostFor: 5 * time.Second,
	}

	Backdrop = BackdropConfig{
		Idle:     1,
		Boosted:  5,
		RampUp:   2 * time.Second,
		RampDown: time.Second,
	}
}
