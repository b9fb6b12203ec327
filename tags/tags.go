package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	PlayerShot = donburi.NewTag().SetName("PlayerShot")
	EnemyShot  = donburi.NewTag().SetName("EnemyShot")
	PowerUp    = donburi.NewTag().SetName("PowerUp")
)

// Resolv tags for overlap detection
const (
	ResolvPlayer     = "player"
	ResolvEnemy      = "enemy"
	ResolvPlayerShot = "player_shot"
	ResolvEnemyShot  = "enemy_shot"
	ResolvPowerUp    = "powerup"
)
