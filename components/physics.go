package components

import "github.com/yohamta/donburi"

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// VelocityData moves an entity by Speed * Dir every frame. Dir is a unit
// vector fixed at spawn: aimed for bombs and beams, straight down for enemies.
type VelocityData struct {
	Dir   Vector
	Speed float64
}

var Velocity = donburi.NewComponentType[VelocityData]()
