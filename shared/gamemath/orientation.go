package gamemath

import "math"

// FallbackDirection is used when origin and target coincide: straight down.
var FallbackDirection = [2]float64{0, 1}

// Orientation returns the unit vector pointing from the origin center to the
// target center.
func Orientation(originX, originY, targetX, targetY float64) (dirX, dirY float64) {
	dx := targetX - originX
	dy := targetY - originY
	norm := math.Sqrt(dx*dx + dy*dy)
	if norm == 0 {
		return FallbackDirection[0], FallbackDirection[1]
	}
	return dx / norm, dy / norm
}
