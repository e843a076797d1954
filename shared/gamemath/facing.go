package gamemath

import "math"

// FacingPose converts an 8-way facing into draw parameters for a sprite that
// faces right by default. Left-ish facings mirror the sprite first so it is
// never drawn upside down. Rotation is in radians, clockwise on screen.
func FacingPose(dirX, dirY float64) (flipX bool, rotation float64) {
	if dirX < 0 {
		return true, -math.Atan2(dirY, -dirX)
	}
	return false, math.Atan2(dirY, dirX)
}

// RotatedBounds returns the axis-aligned size of a w x h rectangle rotated by
// angle degrees.
func RotatedBounds(w, h, angle float64) (bw, bh float64) {
	rad := angle * math.Pi / 180
	c := math.Abs(math.Cos(rad))
	s := math.Abs(math.Sin(rad))
	return w*c + h*s, w*s + h*c
}

// ShieldOffset returns where the shield center sits relative to the player
// center. Diagonal facings are pulled in by sqrt(2) so the shield stays at the
// same distance.
func ShieldOffset(playerW, playerH, dirX, dirY float64) (offsetX, offsetY float64) {
	offsetX = playerW * dirX
	offsetY = playerH * dirY
	if dirX != 0 && dirY != 0 {
		offsetX /= math.Sqrt2
		offsetY /= math.Sqrt2
	}
	return offsetX, offsetY
}
