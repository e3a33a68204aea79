package core

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func box(x, y, hw, hh float64) Box {
	return NewBox(V(x, y), V(hw, hh))
}

func TestOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
		edge     Edge
	}{
		{
			name:     "ball under top wall",
			a:        box(0, 4.9, 0.1, 0.1),
			b:        box(0, 5, 10, 0.1),
			expected: true,
			edge:     EdgeBottom,
		},
		{
			name:     "ball above bottom wall",
			a:        box(3, -4.9, 0.1, 0.1),
			b:        box(0, -5, 10, 0.1),
			expected: true,
			edge:     EdgeTop,
		},
		{
			name:     "ball left of right paddle",
			a:        box(9.0, 0.2, 0.1, 0.1),
			b:        box(9.2, 0, 0.15, 0.5),
			expected: true,
			edge:     EdgeLeft,
		},
		{
			name:     "ball right of left paddle",
			a:        box(-9.0, -0.3, 0.1, 0.1),
			b:        box(-9.2, 0, 0.15, 0.5),
			expected: true,
			edge:     EdgeRight,
		},
		{
			name:     "separated horizontally",
			a:        box(0, 0, 1, 1),
			b:        box(5, 0, 1, 1),
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        box(0, 0, 1, 1),
			b:        box(0, 5, 1, 1),
			expected: false,
		},
		{
			name:     "touching edges do not overlap",
			a:        box(0, 0, 1, 1),
			b:        box(2, 0, 1, 1),
			expected: false,
		},
		{
			name:     "contained box",
			a:        box(0, 0.5, 0.1, 0.1),
			b:        box(0, 0, 10, 1),
			expected: true,
			edge:     EdgeTop,
		},
		{
			name:     "equal penetration prefers vertical",
			a:        box(0.9, 0.9, 0.5, 0.5),
			b:        box(0, 0, 0.5, 0.5),
			expected: true,
			edge:     EdgeTop,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			edge, ok := Overlap(tc.a, tc.b)
			if ok != tc.expected {
				t.Fatalf("Overlap() ok = %v, expected %v", ok, tc.expected)
			}
			if ok && edge != tc.edge {
				t.Errorf("Overlap() edge = %v, expected %v", edge, tc.edge)
			}
			// Also test symmetry
			if Overlaps(tc.b, tc.a) != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", !tc.expected, tc.expected)
			}
		})
	}
}

func genBox(t *rapid.T, label string) Box {
	return box(
		rapid.Float64Range(-20, 20).Draw(t, label+"-x"),
		rapid.Float64Range(-20, 20).Draw(t, label+"-y"),
		rapid.Float64Range(0.01, 10).Draw(t, label+"-hw"),
		rapid.Float64Range(0.01, 10).Draw(t, label+"-hh"),
	)
}

func TestOverlapSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genBox(t, "a")
		b := genBox(t, "b")
		if Overlaps(a, b) != Overlaps(b, a) {
			t.Fatalf("asymmetric overlap: a=%+v b=%+v", a, b)
		}
	})
}

func TestOverlapEdgeOpposes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genBox(t, "a")
		b := genBox(t, "b")
		edge, ok := Overlap(a, b)
		if !ok {
			return
		}
		switch edge {
		case EdgeLeft:
			if a.Center.X >= b.Center.X {
				t.Fatalf("Left edge but a is not left of b: %+v %+v", a, b)
			}
		case EdgeTop:
			if a.Center.Y <= b.Center.Y {
				t.Fatalf("Top edge but a is not above b: %+v %+v", a, b)
			}
		case EdgeRight:
			if a.Center.X < b.Center.X {
				t.Fatalf("Right edge but a is left of b: %+v %+v", a, b)
			}
		}
	})
}

func TestBoxCorners(t *testing.T) {
	b := box(1, 2, 0.5, 1.5)

	if b.Min() != V(0.5, 0.5) {
		t.Errorf("Min() = %v, expected (0.5, 0.5)", b.Min())
	}
	if b.Max() != V(1.5, 3.5) {
		t.Errorf("Max() = %v, expected (1.5, 3.5)", b.Max())
	}
}

func TestVec2(t *testing.T) {
	v := V(3, 4)
	if v.Len() != 5 {
		t.Errorf("Len() = %f, expected 5", v.Len())
	}
	if got := v.Add(V(1, -1)); got != V(4, 3) {
		t.Errorf("Add() = %v", got)
	}
	if got := v.Scale(0.5); got != V(1.5, 2) {
		t.Errorf("Scale() = %v", got)
	}
	if !V(0, 0).IsZero() || v.IsZero() {
		t.Error("IsZero() mismatch")
	}
	if math.Abs(v.Sub(V(3, 4)).Len()) != 0 {
		t.Error("Sub() should cancel")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
