package mathutil

import (
	"math"

	"geomlab/internal/geomerr"
)

// Slice-based variants of the vector operations. They accept any length and
// check dimensions at run time; the fixed-size types above are the fast path
// and the two must agree numerically.

// Dot returns the sum of pairwise products of equal-length vectors.
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, geomerr.Invalid("mathutil.dot", "length %d != %d", len(a), len(b))
	}
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s, nil
}

// Cross returns a × b for 3-component vectors.
func Cross(a, b []float64) ([]float64, error) {
	if len(a) != 3 || len(b) != 3 {
		return nil, geomerr.Invalid("mathutil.cross", "need 3-vectors, got lengths %d and %d", len(a), len(b))
	}
	return []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}, nil
}

// Norm is the Euclidean length; 0 for a zero vector.
func Norm(v []float64) float64 {
	var s float64
	for _, c := range v {
		s += c * c
	}
	return math.Sqrt(s)
}

// Normalize returns v / Norm(v). Zero length is an ErrDegenerate failure.
func Normalize(v []float64) ([]float64, error) {
	n := Norm(v)
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil, geomerr.Degenerate("mathutil.normalize", "vector %v has length %g", v, n)
	}
	out := make([]float64, len(v))
	for i, c := range v {
		out[i] = c / n
	}
	return out, nil
}

// MatVec returns [dot(row, v) for each row].
func MatVec(m [][]float64, v []float64) ([]float64, error) {
	out := make([]float64, len(m))
	for i, row := range m {
		if len(row) != len(v) {
			return nil, geomerr.Invalid("mathutil.matvec", "row %d has length %d, vector has %d", i, len(row), len(v))
		}
		var s float64
		for j := range v {
			s += row[j] * v[j]
		}
		out[i] = s
	}
	return out, nil
}

// Sub returns a - b.
func Sub(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, geomerr.Invalid("mathutil.sub", "length %d != %d", len(a), len(b))
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out, nil
}

// Append returns a copy of v with x appended.
func Append(v []float64, x float64) []float64 {
	out := make([]float64, len(v), len(v)+1)
	copy(out, v)
	return append(out, x)
}
