package volume

import (
	"fmt"
	"math"
	"strings"

	"github.com/akmonengine/extent/internal/floats"
	"github.com/go-gl/mathgl/mgl64"
)

// OrientedBox3D represents a box that may be rotated relative to the global
// axes. It is defined by its center and three half-axis vectors, one per local
// axis. A box without half axes is null.
type OrientedBox3D struct {
	center   mgl64.Vec3
	halfAxes []mgl64.Vec3
}

// NewOrientedBox3D creates an oriented box from its center and half axes.
func NewOrientedBox3D(center mgl64.Vec3, halfAxes [3]mgl64.Vec3) OrientedBox3D {
	return OrientedBox3D{
		center:   center,
		halfAxes: []mgl64.Vec3{halfAxes[0], halfAxes[1], halfAxes[2]},
	}
}

// NewOrientedBox3DFromMat3 creates an oriented box whose half axes are the rows
// of m.
func NewOrientedBox3DFromMat3(center mgl64.Vec3, m mgl64.Mat3) OrientedBox3D {
	return NewOrientedBox3D(center, [3]mgl64.Vec3{m.Row(0), m.Row(1), m.Row(2)})
}

// NewOrientedBox3DFromSlices creates an oriented box from 3 center values and
// 9 row-major half-axis values. A center of another length leaves the center at
// the origin, half axes of another length give a null box.
func NewOrientedBox3DFromSlices(center []float64, halfAxes []float64) OrientedBox3D {
	var o OrientedBox3D
	if len(center) == 3 {
		o.center = mgl64.Vec3{center[0], center[1], center[2]}
	}
	if len(halfAxes) == 9 {
		o.halfAxes = []mgl64.Vec3{
			{halfAxes[0], halfAxes[1], halfAxes[2]},
			{halfAxes[3], halfAxes[4], halfAxes[5]},
			{halfAxes[6], halfAxes[7], halfAxes[8]},
		}
	}
	return o
}

// NewOrientedBox3DFromRotation creates a box with the given half sizes along
// its local axes, rotated by rotation around center.
func NewOrientedBox3DFromRotation(center, halfSizes mgl64.Vec3, rotation mgl64.Quat) OrientedBox3D {
	return NewOrientedBox3D(center, [3]mgl64.Vec3{
		rotation.Rotate(mgl64.Vec3{halfSizes.X(), 0, 0}),
		rotation.Rotate(mgl64.Vec3{0, halfSizes.Y(), 0}),
		rotation.Rotate(mgl64.Vec3{0, 0, halfSizes.Z()}),
	})
}

// OrientedBox3DFromBox3D converts an axis-aligned box into an oriented box with
// axis-aligned half axes.
func OrientedBox3DFromBox3D(b Box3D) OrientedBox3D {
	return NewOrientedBox3D(b.Center(), [3]mgl64.Vec3{
		{b.Width() / 2, 0, 0},
		{0, b.Height() / 2, 0},
		{0, 0, b.Depth() / 2},
	})
}

// IsNull reports whether the box has no half axes.
func (o OrientedBox3D) IsNull() bool {
	return len(o.halfAxes) == 0
}

func (o OrientedBox3D) Center() mgl64.Vec3 { return o.center }
func (o OrientedBox3D) CenterX() float64 { return o.center.X() }
func (o OrientedBox3D) CenterY() float64 { return o.center.Y() }
func (o OrientedBox3D) CenterZ() float64 { return o.center.Z() }

// HalfAxes returns the 9 half-axis values in row-major order, or nil for a null
// box.
func (o OrientedBox3D) HalfAxes() []float64 {
	if o.IsNull() {
		return nil
	}
	values := make([]float64, 0, 9)
	for _, axis := range o.halfAxes {
		values = append(values, axis.X(), axis.Y(), axis.Z())
	}
	return values
}

// Size returns the full length of each local axis.
func (o OrientedBox3D) Size() mgl64.Vec3 {
	if o.IsNull() {
		return mgl64.Vec3{}
	}
	return mgl64.Vec3{
		2 * o.halfAxes[0].Len(),
		2 * o.halfAxes[1].Len(),
		2 * o.halfAxes[2].Len(),
	}
}

// Corners returns the 8 corners center ± a0 ± a1 ± a2. Corner i subtracts a0
// when bit 0 of i is set, a1 for bit 1 and a2 for bit 2. A null box has no
// corners.
func (o OrientedBox3D) Corners() []mgl64.Vec3 {
	if o.IsNull() {
		return nil
	}

	corners := make([]mgl64.Vec3, 8)
	for i := range corners {
		corner := o.center
		for axis := 0; axis < 3; axis++ {
			if i&(1<<axis) != 0 {
				corner = corner.Sub(o.halfAxes[axis])
			} else {
				corner = corner.Add(o.halfAxes[axis])
			}
		}
		corners[i] = corner
	}
	return corners
}

// Extent returns the axis-aligned bounding box of the corners, or a null box.
func (o OrientedBox3D) Extent() Box3D {
	if o.IsNull() {
		return NewNullBox3D()
	}

	extent := NewMinimalBox3D()
	for _, corner := range o.Corners() {
		extent.CombineWithPoint(corner.X(), corner.Y(), corner.Z())
	}
	return extent
}

// Intersects checks if two oriented boxes overlap using the separating axis
// test over the face normals of both boxes and the cross products of their
// edges. Null boxes never intersect.
func (o OrientedBox3D) Intersects(other OrientedBox3D) bool {
	if o.IsNull() || other.IsNull() {
		return false
	}

	delta := o.center.Sub(other.center)
	for _, plane := range o.candidateAxes(other) {
		if o.separatedAlong(plane, delta, other) {
			return false
		}
	}
	return true
}

func (o OrientedBox3D) candidateAxes(other OrientedBox3D) []mgl64.Vec3 {
	axes := make([]mgl64.Vec3, 0, 15)
	axes = append(axes, o.halfAxes...)
	axes = append(axes, other.halfAxes...)
	for _, a := range o.halfAxes {
		for _, b := range other.halfAxes {
			axes = append(axes, a.Cross(b))
		}
	}
	return axes
}

// separatedAlong reports whether plane separates the projections of both
// boxes. A zero plane never separates.
func (o OrientedBox3D) separatedAlong(plane, delta mgl64.Vec3, other OrientedBox3D) bool {
	var radius float64
	for _, axis := range o.halfAxes {
		radius += math.Abs(axis.Dot(plane))
	}
	for _, axis := range other.halfAxes {
		radius += math.Abs(axis.Dot(plane))
	}
	return math.Abs(delta.Dot(plane)) > radius
}

// Equals compares centers and half axes with tolerance.
func (o OrientedBox3D) Equals(other OrientedBox3D) bool {
	if o.IsNull() != other.IsNull() {
		return false
	}
	for i := 0; i < 3; i++ {
		if !floats.Near(o.center[i], other.center[i]) {
			return false
		}
	}
	for row := range o.halfAxes {
		for col := 0; col < 3; col++ {
			if !floats.Near(o.halfAxes[row][col], other.halfAxes[row][col]) {
				return false
			}
		}
	}
	return true
}

func (o OrientedBox3D) String() string {
	if o.IsNull() {
		return "OrientedBox3D(Null)"
	}
	axes := make([]string, len(o.halfAxes))
	for i, axis := range o.halfAxes {
		axes[i] = fmt.Sprintf("(%g, %g, %g)", axis.X(), axis.Y(), axis.Z())
	}
	return fmt.Sprintf("OrientedBox3D(center: (%g, %g, %g), halfAxes: [%s])",
		o.center.X(), o.center.Y(), o.center.Z(), strings.Join(axes, ", "))
}
