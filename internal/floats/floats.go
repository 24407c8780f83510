// Package floats holds the scalar comparison helpers shared by the box types.
//
// Min and Max follow the ordering of a plain "less than" comparison, so a NaN
// in the first operand is kept while a NaN in the second operand is dropped.
// The box accumulation and distance code relies on that asymmetry.
package floats

import "math"

// Epsilon is the default tolerance used by Near.
const Epsilon = 4 * 2.220446049250313e-16

// Near reports whether a and b differ by at most Epsilon.
// Two NaNs are near each other, a NaN is never near a number.
func Near(a, b float64) bool {
	return NearThreshold(a, b, Epsilon)
}

// NearThreshold reports whether a and b differ by at most epsilon.
func NearThreshold(a, b, epsilon float64) bool {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	if aNaN || bNaN {
		return aNaN && bNaN
	}
	diff := a - b
	return diff > -epsilon && diff <= epsilon
}

// Min returns b if b < a, otherwise a.
func Min(a, b float64) float64 {
	if b < a {
		return b
	}
	return a
}

// Max returns b if a < b, otherwise a.
func Max(a, b float64) float64 {
	if a < b {
		return b
	}
	return a
}
