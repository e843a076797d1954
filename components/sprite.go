package components

import (
	"github.com/yohamta/donburi"
)

// SpriteData describes how an entity's image is posed. Images themselves are
// looked up by the renderers so the simulation never touches the GPU.
type SpriteData struct {
	Variant  int
	Rotation float64 // Radians, clockwise (ebiten GeoM)
	FlipX    bool
	FlipY    bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
