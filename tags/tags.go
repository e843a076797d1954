package tags

import "github.com/yohamta/donburi"

var (
	Player    = donburi.NewTag().SetName("Player")
	Enemy     = donburi.NewTag().SetName("Enemy")
	Bomb      = donburi.NewTag().SetName("Bomb")
	Beam      = donburi.NewTag().SetName("Beam")
	Explosion = donburi.NewTag().SetName("Explosion")
	Shield    = donburi.NewTag().SetName("Shield")
	EMP       = donburi.NewTag().SetName("EMP")
	Gravity   = donburi.NewTag().SetName("Gravity")
)

// Resolv tags for collision
const (
	ResolvPlayer  = "player"
	ResolvEnemy   = "enemy"
	ResolvBomb    = "bomb"
	ResolvBeam    = "beam"
	ResolvShield  = "shield"
	ResolvGravity = "gravity"
)
