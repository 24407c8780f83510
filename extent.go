// Package extent accumulates bounding boxes over large sets of boxes and points.
//
// Inputs are split across workers, every worker folds its chunk into its own
// box seeded with SetMinimal, and the partial boxes are merged at the end. The
// union is associative and commutative, so the result matches a sequential
// fold for finite inputs.
package extent

import (
	"github.com/akmonengine/extent/volume"
	"github.com/go-gl/mathgl/mgl64"
	"k8s.io/klog/v2"
)

const DEFAULT_WORKERS = 1

// Combine returns the union of all boxes. An empty input gives a null box.
func Combine(boxes []volume.Box3D, workers int) volume.Box3D {
	partials := newPartials(workers)
	klog.V(5).Infof("combining %d boxes with %d workers", len(boxes), len(partials))

	task(len(partials), boxes, func(worker int, chunk []volume.Box3D) {
		for _, box := range chunk {
			partials[worker].CombineWith(box)
		}
	})
	return merge(partials)
}

// CombinePoints returns the bounding box of all points. An empty input gives a
// null box.
func CombinePoints(points []mgl64.Vec3, workers int) volume.Box3D {
	partials := newPartials(workers)
	klog.V(5).Infof("combining %d points with %d workers", len(points), len(partials))

	task(len(partials), points, func(worker int, chunk []mgl64.Vec3) {
		for _, p := range chunk {
			partials[worker].CombineWithPoint(p.X(), p.Y(), p.Z())
		}
	})
	return merge(partials)
}

// CombineOriented returns the union of the extents of all oriented boxes. Null
// boxes are skipped.
func CombineOriented(boxes []volume.OrientedBox3D, workers int) volume.Box3D {
	partials := newPartials(workers)
	klog.V(5).Infof("combining %d oriented boxes with %d workers", len(boxes), len(partials))

	task(len(partials), boxes, func(worker int, chunk []volume.OrientedBox3D) {
		for _, box := range chunk {
			if box.IsNull() {
				continue
			}
			partials[worker].CombineWith(box.Extent())
		}
	})
	return merge(partials)
}

func newPartials(workers int) []volume.Box3D {
	partials := make([]volume.Box3D, max(DEFAULT_WORKERS, workers))
	for i := range partials {
		partials[i].SetMinimal()
	}
	return partials
}

func merge(partials []volume.Box3D) volume.Box3D {
	result := volume.NewMinimalBox3D()
	for _, partial := range partials {
		result.CombineWith(partial)
	}
	return result
}
