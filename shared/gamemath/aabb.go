// Package gamemath holds the pure geometry and kinematics used by the movement
// core. Nothing here knows about tiles, actors or ebiten.
package gamemath

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/yohamta/donburi/features/math"
)

// ErrDegenerateBox is returned when a box is built with a zero, negative or
// non-finite size.
var ErrDegenerateBox = errors.New("degenerate bounding box")

// AABB is an axis-aligned bounding box. X grows right, Y grows down.
type AABB struct {
	Min math.Vec2
	Max math.Vec2
}

// NewAABB builds a box from its top-left corner and size.
func NewAABB(x, y, w, h float64) (AABB, error) {
	if !isFinite(x) || !isFinite(y) || !isFinite(w) || !isFinite(h) || w <= 0 || h <= 0 {
		return AABB{}, fmt.Errorf("%w: x=%v y=%v w=%v h=%v", ErrDegenerateBox, x, y, w, h)
	}
	return Rect(x, y, w, h), nil
}

// Rect is NewAABB without validation, for callers that already know the size
// is positive.
func Rect(x, y, w, h float64) AABB {
	return AABB{
		Min: math.NewVec2(x, y),
		Max: math.NewVec2(x+w, y+h),
	}
}

func (b AABB) Width() float64 {
	return b.Max.X - b.Min.X
}

func (b AABB) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Translate returns the box moved by v. Both corners move together.
func (b AABB) Translate(v math.Vec2) AABB {
	return AABB{Min: b.Min.Add(v), Max: b.Max.Add(v)}
}

// MinkowskiDifference returns a ⊖ b. The boxes overlap when the result
// contains the origin.
func MinkowskiDifference(a, b AABB) AABB {
	return AABB{
		Min: a.Min.Sub(b.Max),
		Max: a.Max.Sub(b.Min),
	}
}

// Overlap reports whether a and b interpenetrate and the penetration vector
// of a into b. Touching edges do not count. The vector has a single non-zero
// axis: the one needing the smaller push, Y on a tie. Moving a by the negated
// vector separates the boxes.
func Overlap(a, b AABB) (bool, math.Vec2) {
	d := MinkowskiDifference(a, b)

	colliding := d.Min.X < 0 && d.Max.X > 0 && d.Min.Y < 0 && d.Max.Y > 0

	px := nearest(d.Min.X, d.Max.X)
	py := nearest(d.Min.Y, d.Max.Y)

	if gomath.Abs(px) < gomath.Abs(py) {
		return colliding, math.NewVec2(px, 0)
	}
	return colliding, math.NewVec2(0, py)
}

// nearest picks the edge of the difference closest to the origin on one axis.
func nearest(lo, hi float64) float64 {
	if gomath.Abs(lo) < gomath.Abs(hi) {
		return lo
	}
	return hi
}

func isFinite(v float64) bool {
	return !gomath.IsNaN(v) && !gomath.IsInf(v, 0)
}
