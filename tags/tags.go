package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Enemy        = donburi.NewTag().SetName("Enemy")
	DeathOverlay = donburi.NewTag().SetName("DeathOverlay")
	WinOverlay   = donburi.NewTag().SetName("WinOverlay")
)

// Resolv tags for the contact space
const (
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
)
