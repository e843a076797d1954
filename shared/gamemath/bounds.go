package gamemath

// CheckBound reports whether a rectangle lies inside a width x height screen,
// evaluated independently for the horizontal and vertical axes.
func CheckBound(x, y, w, h, width, height float64) (horizontal, vertical bool) {
	horizontal, vertical = true, true
	if x < 0 || width < x+w {
		horizontal = false
	}
	if y < 0 || height < y+h {
		vertical = false
	}
	return horizontal, vertical
}

// InBounds reports whether a rectangle is inside the screen on both axes.
func InBounds(x, y, w, h, width, height float64) bool {
	horizontal, vertical := CheckBound(x, y, w, h, width, height)
	return horizontal && vertical
}

// Overlaps reports whether two rectangles intersect. Rectangles that only
// share an edge do not overlap.
func Overlaps(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && bx < ax+aw && ay < by+bh && by < ay+ah
}
