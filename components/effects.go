package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ExplosionData counts down the frames an explosion stays on screen.
// The entity is removed once Life drops below zero.
type ExplosionData struct {
	Life int
}

var Explosion = donburi.NewComponentType[ExplosionData]()

// ShieldData is removed once Life reaches zero.
type ShieldData struct {
	Life     int
	Rotation float64 // Degrees, follows the player facing
}

var Shield = donburi.NewComponentType[ShieldData]()

// EMPData counts down to zero and is removed on the following update.
type EMPData struct {
	Duration int
}

var EMP = donburi.NewComponentType[EMPData]()

// GravityData is removed once Life drops below zero.
type GravityData struct {
	Life int
}

var Gravity = donburi.NewComponentType[GravityData]()

// FadeData drives the alpha of a full-screen overlay or sprite.
type FadeData struct {
	Tween *gween.Tween
	Alpha float32 // 0..1, multiplied with the configured overlay alpha
}

var Fade = donburi.NewComponentType[FadeData]()
