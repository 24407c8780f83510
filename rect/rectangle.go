// Package rect implements the 2D axis-aligned rectangle that the 3D boxes
// delegate their x/y extent to.
package rect

import (
	"math"

	"github.com/akmonengine/extent/internal/floats"
	"github.com/go-gl/mathgl/mgl64"
)

// Rectangle is an axis-aligned 2D extent. Bounds are stored as given and may be
// inverted until Normalize is called.
type Rectangle struct {
	Min mgl64.Vec2
	Max mgl64.Vec2
}

// New creates a rectangle from its bounds, normalizing it if requested.
func New(xmin, ymin, xmax, ymax float64, normalize bool) Rectangle {
	r := Rectangle{
		Min: mgl64.Vec2{xmin, ymin},
		Max: mgl64.Vec2{xmax, ymax},
	}
	if normalize {
		r.Normalize()
	}
	return r
}

// NewMinimal creates a rectangle in the inverted sentinel state, see SetMinimal.
func NewMinimal() Rectangle {
	r := Rectangle{}
	r.SetMinimal()
	return r
}

func (r Rectangle) XMinimum() float64 { return r.Min.X() }
func (r Rectangle) XMaximum() float64 { return r.Max.X() }
func (r Rectangle) YMinimum() float64 { return r.Min.Y() }
func (r Rectangle) YMaximum() float64 { return r.Max.Y() }

func (r *Rectangle) SetXMinimum(x float64) { r.Min[0] = x }
func (r *Rectangle) SetXMaximum(x float64) { r.Max[0] = x }
func (r *Rectangle) SetYMinimum(y float64) { r.Min[1] = y }
func (r *Rectangle) SetYMaximum(y float64) { r.Max[1] = y }

// Width returns xmax - xmin.
func (r Rectangle) Width() float64 {
	return r.Max.X() - r.Min.X()
}

// Height returns ymax - ymin.
func (r Rectangle) Height() float64 {
	return r.Max.Y() - r.Min.Y()
}

// SetMinimal puts the minimum corner at +MaxFloat64 and the maximum corner at
// -MaxFloat64, so that the first combine adopts the combined bounds.
func (r *Rectangle) SetMinimal() {
	r.Min = mgl64.Vec2{math.MaxFloat64, math.MaxFloat64}
	r.Max = mgl64.Vec2{-math.MaxFloat64, -math.MaxFloat64}
}

// SetNull sets every bound to NaN.
func (r *Rectangle) SetNull() {
	nan := math.NaN()
	r.Min = mgl64.Vec2{nan, nan}
	r.Max = mgl64.Vec2{nan, nan}
}

// IsNull reports whether no extent was recorded: all bounds NaN, or all bounds
// in the SetMinimal state.
func (r Rectangle) IsNull() bool {
	allNaN := math.IsNaN(r.Min.X()) && math.IsNaN(r.Max.X()) &&
		math.IsNaN(r.Min.Y()) && math.IsNaN(r.Max.Y())
	if allNaN {
		return true
	}
	return floats.Near(r.Min.X(), math.MaxFloat64) && floats.Near(r.Min.Y(), math.MaxFloat64) &&
		floats.Near(r.Max.X(), -math.MaxFloat64) && floats.Near(r.Max.Y(), -math.MaxFloat64)
}

// IsEmpty reports whether the rectangle has no area: inverted or degenerate on
// either axis.
func (r Rectangle) IsEmpty() bool {
	return r.Max.X() < r.Min.X() || r.Max.Y() < r.Min.Y() ||
		floats.Near(r.Max.X(), r.Min.X()) || floats.Near(r.Max.Y(), r.Min.Y())
}

// Normalize swaps bounds so that min <= max on each axis.
func (r *Rectangle) Normalize() {
	if r.Min[0] > r.Max[0] {
		r.Min[0], r.Max[0] = r.Max[0], r.Min[0]
	}
	if r.Min[1] > r.Max[1] {
		r.Min[1], r.Max[1] = r.Max[1], r.Min[1]
	}
}

// Intersects checks if two rectangles overlap. Touching edges overlap.
func (r Rectangle) Intersects(other Rectangle) bool {
	x1 := floats.Max(r.Min.X(), other.Min.X())
	x2 := floats.Min(r.Max.X(), other.Max.X())
	if x1 > x2 {
		return false
	}
	y1 := floats.Max(r.Min.Y(), other.Min.Y())
	y2 := floats.Min(r.Max.Y(), other.Max.Y())
	return y1 <= y2
}

// Intersect returns the overlapping part of both rectangles, or a minimal
// rectangle if they do not overlap.
func (r Rectangle) Intersect(other Rectangle) Rectangle {
	if !r.Intersects(other) {
		return NewMinimal()
	}
	return New(
		floats.Max(r.Min.X(), other.Min.X()),
		floats.Max(r.Min.Y(), other.Min.Y()),
		floats.Min(r.Max.X(), other.Max.X()),
		floats.Min(r.Max.Y(), other.Max.Y()),
		false,
	)
}

// Contains checks if other lies entirely inside r. Shared edges count as inside.
func (r Rectangle) Contains(other Rectangle) bool {
	return r.Min.X() <= other.Min.X() && other.Max.X() <= r.Max.X() &&
		r.Min.Y() <= other.Min.Y() && other.Max.Y() <= r.Max.Y()
}

// ContainsPoint checks if (x, y) is inside r, boundary included.
func (r Rectangle) ContainsPoint(x, y float64) bool {
	return r.Min.X() <= x && x <= r.Max.X() &&
		r.Min.Y() <= y && y <= r.Max.Y()
}

// CombineExtentWith expands r to cover other. A null rectangle adopts other,
// a null other leaves r untouched.
func (r *Rectangle) CombineExtentWith(other Rectangle) {
	if r.IsNull() {
		*r = other
		return
	}
	if other.IsNull() {
		return
	}
	r.Min[0] = floats.Min(r.Min[0], other.Min[0])
	r.Min[1] = floats.Min(r.Min[1], other.Min[1])
	r.Max[0] = floats.Max(r.Max[0], other.Max[0])
	r.Max[1] = floats.Max(r.Max[1], other.Max[1])
}

// CombineExtentWithPoint expands r to cover (x, y).
func (r *Rectangle) CombineExtentWithPoint(x, y float64) {
	if r.IsNull() {
		*r = New(x, y, x, y, false)
		return
	}
	r.Min[0] = floats.Min(r.Min[0], x)
	r.Min[1] = floats.Min(r.Min[1], y)
	r.Max[0] = floats.Max(r.Max[0], x)
	r.Max[1] = floats.Max(r.Max[1], y)
}

// Equals compares all four bounds with tolerance.
func (r Rectangle) Equals(other Rectangle) bool {
	return floats.Near(r.Min.X(), other.Min.X()) && floats.Near(r.Min.Y(), other.Min.Y()) &&
		floats.Near(r.Max.X(), other.Max.X()) && floats.Near(r.Max.Y(), other.Max.Y())
}
