package gmath

import (
	"math"
)

const (
	Deg2Rad = math.Pi / 180
	Rad2Deg = 180 / math.Pi
)

/*
	NearlyEquals compares two float64 with an error margin
	http://floating-point-gui.de/errors/comparison/
*/
func NearlyEquals(a, b, epsilon float64) bool {
	// shortcut, handles infinities
	if a == b {
		return true
	}

	diff := math.Abs(a - b)

	// a or b or both are zero
	if a*b == 0 {
		return diff < (epsilon * epsilon)
	}

	absA := math.Abs(a)
	absB := math.Abs(b)

	// use relative error
	return diff/(absA+absB) < epsilon
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
