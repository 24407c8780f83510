package volume

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func unitOrientedBox(center mgl64.Vec3) OrientedBox3D {
	return NewOrientedBox3D(center, [3]mgl64.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
}

func TestOrientedBoxUnitCubeCorners(t *testing.T) {
	box := unitOrientedBox(mgl64.Vec3{0, 0, 0})
	corners := box.Corners()

	if len(corners) != 8 {
		t.Fatalf("expected 8 corners, got %d", len(corners))
	}

	expected := []mgl64.Vec3{
		{1, 1, 1},
		{-1, 1, 1},
		{1, -1, 1},
		{-1, -1, 1},
		{1, 1, -1},
		{-1, 1, -1},
		{1, -1, -1},
		{-1, -1, -1},
	}
	for i := range expected {
		if !vec3Equal(corners[i], expected[i], 1e-12) {
			t.Errorf("corner %d: expected %v, got %v", i, expected[i], corners[i])
		}
	}
}

func TestOrientedBoxUnitCubeExtent(t *testing.T) {
	box := unitOrientedBox(mgl64.Vec3{0, 0, 0})
	extent := box.Extent()

	if !extent.Equals(NewBox3D(-1, -1, -1, 1, 1, 1, false)) {
		t.Errorf("unexpected extent %v", extent)
	}
	if !extent.Is3D() {
		t.Errorf("extent should be 3D")
	}
}

func TestOrientedBoxNull(t *testing.T) {
	var zero OrientedBox3D
	if !zero.IsNull() {
		t.Errorf("zero value should be null")
	}
	if zero.Corners() != nil {
		t.Errorf("null box should have no corners")
	}
	if zero.HalfAxes() != nil {
		t.Errorf("null box should have no half axes")
	}
	if !zero.Extent().IsNull() {
		t.Errorf("extent of a null box should be null")
	}
	if zero.Size() != (mgl64.Vec3{}) {
		t.Errorf("null box should have a zero size")
	}
	if zero.String() != "OrientedBox3D(Null)" {
		t.Errorf("unexpected string %q", zero.String())
	}
}

func TestOrientedBoxFromSlices(t *testing.T) {
	tests := []struct {
		name     string
		center   []float64
		halfAxes []float64
		isNull   bool
		center3  mgl64.Vec3
	}{
		{"valid", []float64{1, 2, 3}, []float64{1, 0, 0, 0, 2, 0, 0, 0, 3}, false, mgl64.Vec3{1, 2, 3}},
		{"short half axes", []float64{1, 2, 3}, []float64{1, 0, 0}, true, mgl64.Vec3{1, 2, 3}},
		{"no half axes", []float64{1, 2, 3}, nil, true, mgl64.Vec3{1, 2, 3}},
		{"short center", []float64{1, 2}, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, false, mgl64.Vec3{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := NewOrientedBox3DFromSlices(tt.center, tt.halfAxes)
			if box.IsNull() != tt.isNull {
				t.Errorf("IsNull() = %v, expected %v", box.IsNull(), tt.isNull)
			}
			if box.Center() != tt.center3 {
				t.Errorf("expected center %v, got %v", tt.center3, box.Center())
			}
		})
	}

	box := NewOrientedBox3DFromSlices([]float64{1, 2, 3}, []float64{1, 0, 0, 0, 2, 0, 0, 0, 3})
	if box.CenterX() != 1 || box.CenterY() != 2 || box.CenterZ() != 3 {
		t.Errorf("unexpected center components")
	}
	halfAxes := box.HalfAxes()
	expected := []float64{1, 0, 0, 0, 2, 0, 0, 0, 3}
	for i := range expected {
		if halfAxes[i] != expected[i] {
			t.Errorf("half axis value %d: expected %v, got %v", i, expected[i], halfAxes[i])
		}
	}
	if !box.Extent().Equals(NewBox3D(0, 0, 0, 2, 4, 6, false)) {
		t.Errorf("unexpected extent %v", box.Extent())
	}
}

func TestOrientedBoxFromMat3(t *testing.T) {
	m := mgl64.Mat3FromRows(
		mgl64.Vec3{2, 0, 0},
		mgl64.Vec3{0, 3, 0},
		mgl64.Vec3{0, 0, 4},
	)
	box := NewOrientedBox3DFromMat3(mgl64.Vec3{1, 1, 1}, m)
	expected := NewOrientedBox3DFromSlices([]float64{1, 1, 1}, []float64{2, 0, 0, 0, 3, 0, 0, 0, 4})

	if !box.Equals(expected) {
		t.Errorf("rows of the matrix should be the half axes: %v vs %v", box, expected)
	}
}

func TestOrientedBoxFromRotation(t *testing.T) {
	rotation := mgl64.QuatRotate(math.Pi/4, mgl64.Vec3{0, 0, 1})
	box := NewOrientedBox3DFromRotation(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}, rotation)
	extent := box.Extent()

	expected := NewBox3D(-math.Sqrt2, -math.Sqrt2, -1, math.Sqrt2, math.Sqrt2, 1, false)
	if !boxNear(extent, expected, 1e-9) {
		t.Errorf("expected %v, got %v", expected, extent)
	}

	size := box.Size()
	if !vec3Equal(size, mgl64.Vec3{2, 2, 2}, 1e-9) {
		t.Errorf("rotation should not change the size, got %v", size)
	}
}

func TestOrientedBoxFromBox3D(t *testing.T) {
	b := NewBox3D(0, 2, 4, 10, 5, 6, false)
	o := OrientedBox3DFromBox3D(b)

	if !o.Extent().Equals(b) {
		t.Errorf("extent should round trip: %v vs %v", o.Extent(), b)
	}

	boxCorners := b.Corners()
	orientedCorners := o.Corners()
	for i := range boxCorners {
		if !vec3Equal(boxCorners[i], orientedCorners[i], 1e-12) {
			t.Errorf("corner %d: %v vs %v", i, boxCorners[i], orientedCorners[i])
		}
	}

	if !vec3Equal(o.Size(), mgl64.Vec3{10, 3, 2}, 1e-12) {
		t.Errorf("unexpected size %v", o.Size())
	}
}

func TestOrientedBoxIntersects(t *testing.T) {
	rotated := func(center mgl64.Vec3) OrientedBox3D {
		return NewOrientedBox3DFromRotation(center, mgl64.Vec3{1, 1, 1}, mgl64.QuatRotate(math.Pi/4, mgl64.Vec3{0, 0, 1}))
	}
	a := unitOrientedBox(mgl64.Vec3{0, 0, 0})

	tests := []struct {
		name     string
		b        OrientedBox3D
		expected bool
	}{
		{"identical", a, true},
		{"overlapping", unitOrientedBox(mgl64.Vec3{1.5, 0, 0}), true},
		{"touching", unitOrientedBox(mgl64.Vec3{2, 0, 0}), true},
		{"separated", unitOrientedBox(mgl64.Vec3{2.5, 0, 0}), false},
		{"separated diagonally", unitOrientedBox(mgl64.Vec3{2.1, 2.1, 2.1}), false},
		{"rotated overlapping", rotated(mgl64.Vec3{2.3, 0, 0}), true},
		{"rotated separated", rotated(mgl64.Vec3{2.5, 0, 0}), false},
		{"null", OrientedBox3D{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tt.expected)
			}
			// Test symmetry
			if got := tt.b.Intersects(a); got != tt.expected {
				t.Errorf("Intersects() = %v, expected %v (symmetry test)", got, tt.expected)
			}
		})
	}
}

func TestOrientedBoxEquals(t *testing.T) {
	a := unitOrientedBox(mgl64.Vec3{1, 2, 3})
	b := NewOrientedBox3D(mgl64.Vec3{1, 2, 3 + 1e-17}, [3]mgl64.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	c := NewOrientedBox3D(mgl64.Vec3{1, 2, 3}, [3]mgl64.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1.001}})

	if !a.Equals(b) {
		t.Errorf("boxes within tolerance should be equal")
	}
	if a.Equals(c) {
		t.Errorf("boxes with different half axes should differ")
	}
	if a.Equals(OrientedBox3D{}) {
		t.Errorf("null box should differ from a regular box")
	}
	if !(OrientedBox3D{}).Equals(OrientedBox3D{}) {
		t.Errorf("null boxes should be equal")
	}
}
