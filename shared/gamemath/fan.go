package gamemath

import "math"

// FanAngles returns n angle offsets in degrees spread evenly across spread
// degrees and centered on zero. A single projectile gets offset 0.
func FanAngles(n int, spread float64) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{0}
	}
	step := spread / float64(n-1)
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = -spread/2 + float64(i)*step
	}
	return angles
}

// FacingAngle returns the counter-clockwise angle in degrees of a screen-space
// direction (y grows downward).
func FacingAngle(dirX, dirY float64) float64 {
	return math.Atan2(-dirY, dirX) * 180 / math.Pi
}

// BeamDirection turns a facing direction plus an offset in degrees into the
// resulting angle and unit screen-space direction.
func BeamDirection(facingX, facingY, offset float64) (angle, dirX, dirY float64) {
	angle = offset + FacingAngle(facingX, facingY)
	rad := angle * math.Pi / 180
	return angle, math.Cos(rad), -math.Sin(rad)
}
