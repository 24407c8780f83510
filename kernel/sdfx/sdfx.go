// Package sdfx converts boxes to and from the github.com/deadsy/sdfx
// SDF-based CAD library.
package sdfx

import (
	"github.com/akmonengine/extent/volume"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/pkg/errors"
)

// ToBox3 returns the sdfx bounding box holding the same bounds as b. Bounds are
// copied as they are, without normalization.
func ToBox3(b volume.Box3D) sdf.Box3 {
	return sdf.Box3{
		Min: v3.Vec{X: b.XMinimum(), Y: b.YMinimum(), Z: b.ZMinimum()},
		Max: v3.Vec{X: b.XMaximum(), Y: b.YMaximum(), Z: b.ZMaximum()},
	}
}

// FromBox3 returns the box holding the same bounds as bb.
func FromBox3(bb sdf.Box3) volume.Box3D {
	return volume.NewBox3D(bb.Min.X, bb.Min.Y, bb.Min.Z, bb.Max.X, bb.Max.Y, bb.Max.Z, false)
}

// Solid builds an sdfx solid filling b. The box is normalized first, null and
// empty boxes are rejected.
func Solid(b volume.Box3D) (sdf.SDF3, error) {
	if b.IsNull() {
		return nil, errors.New("cannot build a solid from a null box")
	}
	b.Normalize()
	if b.IsEmpty() {
		return nil, errors.Errorf("cannot build a solid from empty box %s", b.ToString(-1))
	}

	s, err := sdf.Box3D(v3.Vec{X: b.Width(), Y: b.Height(), Z: b.Depth()}, 0)
	if err != nil {
		return nil, errors.Wrap(err, "sdfx.Box3D")
	}
	// sdf.Box3D is centered on the origin.
	c := b.Center()
	m := sdf.Translate3d(v3.Vec{X: c.X(), Y: c.Y(), Z: c.Z()})
	return sdf.Transform3D(s, m), nil
}

// SolidExtent returns the bounding box of an sdfx solid.
func SolidExtent(s sdf.SDF3) volume.Box3D {
	return FromBox3(s.BoundingBox())
}
