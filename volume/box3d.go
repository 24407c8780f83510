package volume

import (
	"math"
	"strconv"
	"strings"

	"github.com/akmonengine/extent/internal/floats"
	"github.com/akmonengine/extent/rect"
	"github.com/go-gl/mathgl/mgl64"
	"k8s.io/klog/v2"
)

// Box3D represents an axis-aligned 3D box.
//
// The x/y extent is held by a rect.Rectangle and the z extent by two scalars.
// Bounds may be inverted on any axis until Normalize is called. Null, empty and
// 2D are predicates over the raw bounds and are recomputed on every call.
type Box3D struct {
	bounds2d rect.Rectangle
	zmin     float64
	zmax     float64
}

// NewBox3D creates a box from its six bounds.
func NewBox3D(xmin, ymin, zmin, xmax, ymax, zmax float64, normalize bool) Box3D {
	b := Box3D{
		bounds2d: rect.New(xmin, ymin, xmax, ymax, false),
		zmin:     zmin,
		zmax:     zmax,
	}
	if normalize {
		b.Normalize()
	}
	return b
}

// NewBox3DFromPoints creates a box from two opposite corners.
func NewBox3DFromPoints(p1, p2 mgl64.Vec3, normalize bool) Box3D {
	return NewBox3D(p1.X(), p1.Y(), p1.Z(), p2.X(), p2.Y(), p2.Z(), normalize)
}

// NewBox3DFromRectangle extrudes r over [zmin, zmax].
func NewBox3DFromRectangle(r rect.Rectangle, zmin, zmax float64, normalize bool) Box3D {
	b := Box3D{bounds2d: r, zmin: zmin, zmax: zmax}
	if normalize {
		b.Normalize()
	}
	return b
}

// NewMinimalBox3D returns a box in the SetMinimal state, ready for accumulation.
func NewMinimalBox3D() Box3D {
	b := Box3D{}
	b.SetMinimal()
	return b
}

// NewNullBox3D returns a box with every bound set to NaN.
func NewNullBox3D() Box3D {
	b := Box3D{}
	b.SetNull()
	return b
}

func (b Box3D) XMinimum() float64 { return b.bounds2d.XMinimum() }
func (b Box3D) XMaximum() float64 { return b.bounds2d.XMaximum() }
func (b Box3D) YMinimum() float64 { return b.bounds2d.YMinimum() }
func (b Box3D) YMaximum() float64 { return b.bounds2d.YMaximum() }
func (b Box3D) ZMinimum() float64 { return b.zmin }
func (b Box3D) ZMaximum() float64 { return b.zmax }

func (b *Box3D) SetXMinimum(x float64) { b.bounds2d.SetXMinimum(x) }
func (b *Box3D) SetXMaximum(x float64) { b.bounds2d.SetXMaximum(x) }
func (b *Box3D) SetYMinimum(y float64) { b.bounds2d.SetYMinimum(y) }
func (b *Box3D) SetYMaximum(y float64) { b.bounds2d.SetYMaximum(y) }
func (b *Box3D) SetZMinimum(z float64) { b.zmin = z }
func (b *Box3D) SetZMaximum(z float64) { b.zmax = z }

// Width returns the extent along x.
func (b Box3D) Width() float64 { return b.bounds2d.Width() }

// Height returns the extent along y.
func (b Box3D) Height() float64 { return b.bounds2d.Height() }

// Depth returns the extent along z.
func (b Box3D) Depth() float64 { return b.zmax - b.zmin }

// Volume returns width * height * depth. Inverted boxes yield negative or
// meaningless values.
func (b Box3D) Volume() float64 {
	return b.Width() * b.Height() * b.Depth()
}

// Center returns the midpoint of each axis.
func (b Box3D) Center() mgl64.Vec3 {
	return mgl64.Vec3{
		(b.XMinimum() + b.XMaximum()) / 2,
		(b.YMinimum() + b.YMaximum()) / 2,
		(b.zmin + b.zmax) / 2,
	}
}

// ToRectangle returns the x/y part of the box.
func (b Box3D) ToRectangle() rect.Rectangle {
	return b.bounds2d
}

// Corners returns the 8 corners of the box. Corner i takes the minimum x when
// bit 0 of i is set, the minimum y for bit 1 and the minimum z for bit 2.
func (b Box3D) Corners() [8]mgl64.Vec3 {
	var corners [8]mgl64.Vec3
	for i := range corners {
		x, y, z := b.XMaximum(), b.YMaximum(), b.zmax
		if i&1 != 0 {
			x = b.XMinimum()
		}
		if i&2 != 0 {
			y = b.YMinimum()
		}
		if i&4 != 0 {
			z = b.zmin
		}
		corners[i] = mgl64.Vec3{x, y, z}
	}
	return corners
}

// SetMinimal puts the minimum corner at +MaxFloat64 and the maximum corner at
// -MaxFloat64 on all three axes. The box is not normalized afterwards.
func (b *Box3D) SetMinimal() {
	b.bounds2d.SetMinimal()
	b.zmin = math.MaxFloat64
	b.zmax = -math.MaxFloat64
}

// SetNull sets every bound to NaN.
func (b *Box3D) SetNull() {
	b.bounds2d.SetNull()
	b.zmin = math.NaN()
	b.zmax = math.NaN()
}

// Normalize swaps bounds so that min <= max on every axis.
func (b *Box3D) Normalize() {
	b.bounds2d.Normalize()
	minTmp := floats.Min(b.zmin, b.zmax)
	b.zmax = floats.Max(b.zmin, b.zmax)
	b.zmin = minTmp
}

// Grow expands every bound outwards by delta.
func (b *Box3D) Grow(delta float64) {
	b.bounds2d.SetXMinimum(b.XMinimum() - delta)
	b.bounds2d.SetXMaximum(b.XMaximum() + delta)
	b.bounds2d.SetYMinimum(b.YMinimum() - delta)
	b.bounds2d.SetYMaximum(b.YMaximum() + delta)
	b.zmin -= delta
	b.zmax += delta
}

// Translate returns a copy of the box shifted by v.
func (b Box3D) Translate(v mgl64.Vec3) Box3D {
	return NewBox3D(
		b.XMinimum()+v.X(), b.YMinimum()+v.Y(), b.zmin+v.Z(),
		b.XMaximum()+v.X(), b.YMaximum()+v.Y(), b.zmax+v.Z(),
		false,
	)
}

// Is2D reports whether the box carries no usable z extent: z bounds equal,
// inverted or NaN.
func (b Box3D) Is2D() bool {
	return floats.Near(b.zmin, b.zmax) || b.zmin > b.zmax || math.IsNaN(b.zmin) || math.IsNaN(b.zmax)
}

// Is3D reports whether the box is neither 2D nor null.
func (b Box3D) Is3D() bool {
	return !b.Is2D() && !b.IsNull()
}

// IsNull reports whether the box holds no extent: every bound NaN, or every
// bound in the SetMinimal state.
func (b Box3D) IsNull() bool {
	allNaN := math.IsNaN(b.XMinimum()) && math.IsNaN(b.XMaximum()) &&
		math.IsNaN(b.YMinimum()) && math.IsNaN(b.YMaximum()) &&
		math.IsNaN(b.zmin) && math.IsNaN(b.zmax)
	if allNaN {
		return true
	}
	return b.XMinimum() == math.MaxFloat64 && b.YMinimum() == math.MaxFloat64 && b.zmin == math.MaxFloat64 &&
		b.XMaximum() == -math.MaxFloat64 && b.YMaximum() == -math.MaxFloat64 && b.zmax == -math.MaxFloat64
}

// IsEmpty reports whether the box has no volume.
func (b Box3D) IsEmpty() bool {
	return b.zmax < b.zmin || floats.Near(b.zmax, b.zmin) || b.bounds2d.IsEmpty()
}

// State classifies the box. Null takes precedence over empty.
func (b Box3D) State() State {
	switch {
	case b.IsNull():
		return StateNull
	case b.IsEmpty():
		return StateEmpty
	default:
		return StateBounded
	}
}

// Intersects checks if two boxes overlap. When either box is 2D only the x/y
// extents are compared.
func (b Box3D) Intersects(other Box3D) bool {
	if !b.bounds2d.Intersects(other.bounds2d) {
		return false
	}
	if other.Is2D() || b.Is2D() {
		return true
	}
	z1 := b.zmin
	if other.zmin > z1 {
		z1 = other.zmin
	}
	z2 := b.zmax
	if other.zmax < z2 {
		z2 = other.zmax
	}
	return z1 <= z2
}

// Contains checks if other lies inside b. When either box is 2D only the x/y
// extents are compared.
func (b Box3D) Contains(other Box3D) bool {
	if !b.bounds2d.Contains(other.bounds2d) {
		return false
	}
	if other.Is2D() || b.Is2D() {
		return true
	}
	return other.zmin >= b.zmin && other.zmax <= b.zmax
}

// ContainsPoint checks if p lies inside b. For a box that is not 3D, or a point
// with a NaN z, only x and y are tested.
func (b Box3D) ContainsPoint(p mgl64.Vec3) bool {
	if b.Is3D() {
		return b.ContainsXYZ(p.X(), p.Y(), p.Z())
	}
	return b.bounds2d.ContainsPoint(p.X(), p.Y())
}

// ContainsXYZ checks if (x, y, z) lies inside b, ignoring z when it is NaN or
// when the box is 2D.
func (b Box3D) ContainsXYZ(x, y, z float64) bool {
	if !b.bounds2d.ContainsPoint(x, y) {
		return false
	}
	if math.IsNaN(z) || b.Is2D() {
		return true
	}
	return b.zmin <= z && z <= b.zmax
}

// Intersect returns the overlap of both boxes. The result is neither
// normalized nor validated: disjoint boxes give an empty or inverted box.
func (b Box3D) Intersect(other Box3D) Box3D {
	intersect2d := b.bounds2d.Intersect(other.bounds2d)
	zmin := floats.Max(b.zmin, other.zmin)
	zmax := floats.Min(b.zmax, other.zmax)
	return NewBox3D(
		intersect2d.XMinimum(), intersect2d.YMinimum(), zmin,
		intersect2d.XMaximum(), intersect2d.YMaximum(), zmax,
		false,
	)
}

// CombineWith expands b so that it covers other as well.
func (b *Box3D) CombineWith(other Box3D) {
	b.bounds2d.CombineExtentWith(other.bounds2d)
	b.zmin = floats.Min(b.zmin, other.zmin)
	b.zmax = floats.Max(b.zmax, other.zmax)
}

// CombineWithPoint expands b so that it covers (x, y, z).
func (b *Box3D) CombineWithPoint(x, y, z float64) {
	b.bounds2d.CombineExtentWithPoint(x, y)
	b.zmin = floats.Min(b.zmin, z)
	b.zmax = floats.Max(b.zmax, z)
}

// DistanceTo returns the Euclidean distance from p to the nearest point on or
// inside the box, 0 when p is inside. The z gap is dropped for a 2D box or when
// p.Z() is NaN.
func (b Box3D) DistanceTo(p mgl64.Vec3) float64 {
	dx := floats.Max(b.XMinimum()-p.X(), floats.Max(0, p.X()-b.XMaximum()))
	dy := floats.Max(b.YMinimum()-p.Y(), floats.Max(0, p.Y()-b.YMaximum()))
	if b.Is2D() || math.IsNaN(p.Z()) {
		return math.Hypot(dx, dy)
	}
	dz := floats.Max(b.zmin-p.Z(), floats.Max(0, p.Z()-b.zmax))
	return math.Hypot(math.Hypot(dx, dy), dz)
}

// Scale scales the box by factor about its own center.
func (b *Box3D) Scale(factor float64) {
	c := b.Center()
	b.scale(factor, c.X(), c.Y(), c.Z())
}

// ScaleAround scales the box by factor about center. A center with a NaN x or y
// is treated as unset and the box center is used instead.
func (b *Box3D) ScaleAround(factor float64, center mgl64.Vec3) {
	if math.IsNaN(center.X()) || math.IsNaN(center.Y()) {
		b.Scale(factor)
		return
	}
	b.scale(factor, center.X(), center.Y(), center.Z())
}

func (b *Box3D) scale(factor, cx, cy, cz float64) {
	b.SetXMinimum(cx + (b.XMinimum()-cx)*factor)
	b.SetXMaximum(cx + (b.XMaximum()-cx)*factor)

	b.SetYMinimum(cy + (b.YMinimum()-cy)*factor)
	b.SetYMaximum(cy + (b.YMaximum()-cy)*factor)

	b.SetZMinimum(cz + (b.zmin-cz)*factor)
	b.SetZMaximum(cz + (b.zmax-cz)*factor)
}

// Equals compares both boxes bound by bound with tolerance.
func (b Box3D) Equals(other Box3D) bool {
	return b.bounds2d.Equals(other.bounds2d) &&
		floats.Near(b.zmin, other.zmin) &&
		floats.Near(b.zmax, other.zmax)
}

// ToString renders the box as "xmin,ymin,zmin : xmax,ymax,zmax", or "Null" /
// "Empty". A negative precision is derived from the smaller of width and height
// so that small boxes keep distinguishing digits.
func (b Box3D) ToString(precision int) string {
	if precision < 0 {
		precision = 0
		w, h := b.Width(), b.Height()
		if (w < 10 || h < 10) && (w > 0 && h > 0) {
			precision = int(math.Ceil(-math.Log10(math.Min(w, h)))) + 1
			if precision > 20 {
				precision = 20
			}
		}
	}

	var rep string
	switch {
	case b.IsNull():
		rep = "Null"
	case b.IsEmpty():
		rep = "Empty"
	default:
		format := func(v float64) string {
			return strconv.FormatFloat(v, 'f', precision, 64)
		}
		var sb strings.Builder
		sb.WriteString(format(b.XMinimum()))
		sb.WriteByte(',')
		sb.WriteString(format(b.YMinimum()))
		sb.WriteByte(',')
		sb.WriteString(format(b.zmin))
		sb.WriteString(" : ")
		sb.WriteString(format(b.XMaximum()))
		sb.WriteByte(',')
		sb.WriteString(format(b.YMaximum()))
		sb.WriteByte(',')
		sb.WriteString(format(b.zmax))
		rep = sb.String()
	}

	klog.V(4).Infof("Extents : %s", rep)
	return rep
}

// String implements fmt.Stringer with a precision of 16 digits.
func (b Box3D) String() string {
	return b.ToString(16)
}
