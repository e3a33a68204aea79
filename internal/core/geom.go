// Package core provides fundamental types and utilities for the pong simulation.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in arena coordinates (origin at arena center, +Y up).
type Vec2 struct {
	X, Y float64
}

// V creates a new vector.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Edge identifies which side of a box was struck in a collision.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// String returns a human-readable name for the edge.
func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "Left"
	case EdgeRight:
		return "Right"
	case EdgeTop:
		return "Top"
	case EdgeBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// Vertical reports whether the edge is Top or Bottom.
func (e Edge) Vertical() bool {
	return e == EdgeTop || e == EdgeBottom
}

// Box is an axis-aligned bounding box described by its center and half extents.
type Box struct {
	Center Vec2
	Half   Vec2
}

// NewBox creates a box centered at c with the given half extents.
func NewBox(c, half Vec2) Box {
	return Box{Center: c, Half: half}
}

// Min returns the bottom-left corner.
func (b Box) Min() Vec2 {
	return b.Center.Sub(b.Half)
}

// Max returns the top-right corner.
func (b Box) Max() Vec2 {
	return b.Center.Add(b.Half)
}

// Overlaps reports whether a and b intersect with positive depth on both axes.
// Boxes that merely touch do not overlap.
func Overlaps(a, b Box) bool {
	_, ok := Overlap(a, b)
	return ok
}

// Overlap tests two boxes and, if they intersect, classifies which edge of b
// was struck by a. The axis with the smaller penetration depth decides whether
// the hit is horizontal (Left/Right) or vertical (Top/Bottom); equal depths
// resolve to the vertical axis.
func Overlap(a, b Box) (Edge, bool) {
	dx := penetration(a.Min().X, a.Max().X, b.Min().X, b.Max().X)
	if dx <= 0 {
		return 0, false
	}
	dy := penetration(a.Min().Y, a.Max().Y, b.Min().Y, b.Max().Y)
	if dy <= 0 {
		return 0, false
	}

	if dx < dy {
		if a.Center.X < b.Center.X {
			return EdgeLeft, true
		}
		return EdgeRight, true
	}
	if a.Center.Y > b.Center.Y {
		return EdgeTop, true
	}
	return EdgeBottom, true
}

// penetration returns how far the interval [aMin, aMax] has to move to
// separate from [bMin, bMax]. Non-positive means the intervals are disjoint.
func penetration(aMin, aMax, bMin, bMax float64) float64 {
	return math.Min(aMax-bMin, bMax-aMin)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
