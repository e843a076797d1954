package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

type BombData struct {
	Radius int
	Color  color.RGBA
}

var Bomb = donburi.NewComponentType[BombData]()

type BeamData struct {
	Angle float64 // Degrees, counter-clockwise from +x
}

var Beam = donburi.NewComponentType[BeamData]()
