package components

import (
	"github.com/yohamta/donburi"
)

// PlayerState is the invincibility state of the player
type PlayerState int

const (
	PlayerNormal PlayerState = iota
	PlayerInvincible
)

// Expression selects the face drawn for the player
type Expression int

const (
	ExpressionNormal Expression = iota
	ExpressionHappy             // Shown briefly after an enemy kill
	ExpressionSad               // Shown on game over
)

type PlayerData struct {
	Facing           Vector // One of the 8 directions, components in {-1, 0, 1}
	Speed            float64
	State            PlayerState
	InvincibleFrames int
	Expression       Expression
	ExpressionFrames int
}

var Player = donburi.NewComponentType[PlayerData]()
