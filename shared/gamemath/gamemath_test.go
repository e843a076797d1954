package gamemath

import (
	"math"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestCheckBound(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h float64
		wantH      bool
		wantV      bool
	}{
		{"inside", 10, 10, 20, 20, true, true},
		{"touching edges", 0, 0, 100, 50, true, true},
		{"left out", -1, 10, 20, 20, false, true},
		{"right out", 90, 10, 20, 20, false, true},
		{"top out", 10, -5, 20, 20, true, false},
		{"bottom out", 10, 40, 20, 20, true, false},
		{"both out", -10, -10, 5, 5, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, v := CheckBound(tt.x, tt.y, tt.w, tt.h, 100, 50)
			if h != tt.wantH || v != tt.wantV {
				t.Errorf("CheckBound = (%v, %v), want (%v, %v)", h, v, tt.wantH, tt.wantV)
			}
			if InBounds(tt.x, tt.y, tt.w, tt.h, 100, 50) != (tt.wantH && tt.wantV) {
				t.Errorf("InBounds disagrees with CheckBound")
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	if !Overlaps(0, 0, 10, 10, 5, 5, 10, 10) {
		t.Error("expected overlapping rectangles to overlap")
	}
	if Overlaps(0, 0, 10, 10, 10, 0, 10, 10) {
		t.Error("rectangles sharing an edge must not overlap")
	}
	if Overlaps(0, 0, 10, 10, 20, 20, 5, 5) {
		t.Error("distant rectangles must not overlap")
	}
	if !Overlaps(0, 0, 100, 100, 40, 40, 5, 5) {
		t.Error("contained rectangle must overlap")
	}
}

func TestOrientation(t *testing.T) {
	x, y := Orientation(0, 0, 3, 4)
	if !approx(x, 0.6) || !approx(y, 0.8) {
		t.Errorf("Orientation = (%v, %v), want (0.6, 0.8)", x, y)
	}

	x, y = Orientation(10, 10, 10, -20)
	if !approx(x, 0) || !approx(y, -1) {
		t.Errorf("Orientation = (%v, %v), want (0, -1)", x, y)
	}
}

func TestOrientationCoincidentPointsFallsBack(t *testing.T) {
	x, y := Orientation(5, 5, 5, 5)
	if x != FallbackDirection[0] || y != FallbackDirection[1] {
		t.Errorf("Orientation = (%v, %v), want fallback %v", x, y, FallbackDirection)
	}
	if math.IsNaN(x) || math.IsNaN(y) {
		t.Error("fallback direction must not be NaN")
	}
}

func TestFanAngles(t *testing.T) {
	got := FanAngles(5, 100)
	want := []float64{-50, -25, 0, 25, 50}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !approx(got[i], want[i]) {
			t.Errorf("angle[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if single := FanAngles(1, 100); len(single) != 1 || single[0] != 0 {
		t.Errorf("FanAngles(1) = %v, want [0]", single)
	}
	if none := FanAngles(0, 100); none != nil {
		t.Errorf("FanAngles(0) = %v, want nil", none)
	}
}

func TestBeamDirectionFacingUp(t *testing.T) {
	angle, x, y := BeamDirection(0, -1, 0)
	if !approx(angle, 90) {
		t.Errorf("angle = %v, want 90", angle)
	}
	if !approx(x, 0) || !approx(y, -1) {
		t.Errorf("direction = (%v, %v), want (0, -1)", x, y)
	}

	angle, x, y = BeamDirection(0, -1, 50)
	if !approx(angle, 140) {
		t.Errorf("angle = %v, want 140", angle)
	}
	if x >= 0 || y >= 0 {
		t.Errorf("+50 degrees from up should point up-left, got (%v, %v)", x, y)
	}
	if !approx(math.Hypot(x, y), 1) {
		t.Errorf("direction is not a unit vector: (%v, %v)", x, y)
	}
}

func TestFacingPose(t *testing.T) {
	tests := []struct {
		dx, dy   float64
		flip     bool
		rotation float64
	}{
		{1, 0, false, 0},
		{1, -1, false, -math.Pi / 4},
		{0, -1, false, -math.Pi / 2},
		{-1, -1, true, math.Pi / 4},
		{-1, 0, true, 0},
		{-1, 1, true, -math.Pi / 4},
		{0, 1, false, math.Pi / 2},
		{1, 1, false, math.Pi / 4},
	}
	for _, tt := range tests {
		flip, rot := FacingPose(tt.dx, tt.dy)
		if flip != tt.flip || !approx(rot, tt.rotation) {
			t.Errorf("FacingPose(%v, %v) = (%v, %v), want (%v, %v)", tt.dx, tt.dy, flip, rot, tt.flip, tt.rotation)
		}
	}
}

func TestRotatedBounds(t *testing.T) {
	w, h := RotatedBounds(20, 10, 0)
	if !approx(w, 20) || !approx(h, 10) {
		t.Errorf("0 degrees: (%v, %v)", w, h)
	}
	w, h = RotatedBounds(20, 10, 90)
	if !approx(w, 10) || !approx(h, 20) {
		t.Errorf("90 degrees: (%v, %v)", w, h)
	}
	w, h = RotatedBounds(10, 10, 45)
	if !approx(w, 10*math.Sqrt2) || !approx(h, 10*math.Sqrt2) {
		t.Errorf("45 degrees: (%v, %v)", w, h)
	}
}

func TestShieldOffset(t *testing.T) {
	x, y := ShieldOffset(60, 40, 1, 0)
	if !approx(x, 60) || !approx(y, 0) {
		t.Errorf("right: (%v, %v)", x, y)
	}
	x, y = ShieldOffset(60, 40, -1, 1)
	if !approx(x, -60/math.Sqrt2) || !approx(y, 40/math.Sqrt2) {
		t.Errorf("down-left: (%v, %v)", x, y)
	}
}
