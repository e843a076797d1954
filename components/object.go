package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the collision broadphase shared by every entity with an Object.
var Space = donburi.NewComponentType[resolv.Space]()

// CenterX returns the horizontal center of the bounding box.
func (o *ObjectData) CenterX() float64 {
	return o.X + o.W/2
}

// CenterY returns the vertical center of the bounding box.
func (o *ObjectData) CenterY() float64 {
	return o.Y + o.H/2
}

// SetCenter moves the bounding box so that its center is (x, y).
func (o *ObjectData) SetCenter(x, y float64) {
	o.X = x - o.W/2
	o.Y = y - o.H/2
}
