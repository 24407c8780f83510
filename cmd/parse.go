package cmd

import (
	"strconv"
	"strings"

	"github.com/akmonengine/extent/volume"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// parseFloats reads exactly n comma separated numbers.
func parseFloats(s string, n int) ([]float64, error) {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, errors.Errorf("expected %d comma separated values, got %d in %q", n, len(fields), s)
	}

	values := make([]float64, n)
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "value %d of %q", i+1, s)
		}
		values[i] = v
	}
	return values, nil
}

// parseBox reads "xmin,ymin,zmin,xmax,ymax,zmax".
func parseBox(s string, normalize bool) (volume.Box3D, error) {
	v, err := parseFloats(s, 6)
	if err != nil {
		return volume.Box3D{}, errors.Wrap(err, "invalid box")
	}
	return volume.NewBox3D(v[0], v[1], v[2], v[3], v[4], v[5], normalize), nil
}

// parsePoint reads "x,y,z".
func parsePoint(s string) (mgl64.Vec3, error) {
	v, err := parseFloats(s, 3)
	if err != nil {
		return mgl64.Vec3{}, errors.Wrap(err, "invalid point")
	}
	return mgl64.Vec3{v[0], v[1], v[2]}, nil
}
