package mathutil

import "math"

// Eps is the relative tolerance below which a length is treated as zero
// when a result has to be divided by it.
const Eps = 1e-12

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 {
	return r * 180 / math.Pi
}
