// Package triangle computes per-face quantities of a 3D triangle.
package triangle

import (
	"geomlab/internal/geomerr"
	"geomlab/internal/mathutil"
)

// Normal returns (a-b) × (a-c), not normalized.
// Collinear points give the zero vector; that is a valid zero-area result.
func Normal(a, b, c mathutil.Vec3) mathutil.Vec3 {
	ab := a.Sub(b)
	ac := a.Sub(c)
	return ab.Cross(ac)
}

// ScaledNormal returns Normal(a, b, c) * scale.
func ScaledNormal(a, b, c mathutil.Vec3, scale float64) mathutil.Vec3 {
	return Normal(a, b, c).Scale(scale)
}

// UnitNormal returns the normalized face normal. Collinear points fail with ErrDegenerate.
func UnitNormal(a, b, c mathutil.Vec3) (mathutil.Vec3, error) {
	n, err := Normal(a, b, c).Normalize()
	if err != nil {
		return mathutil.Vec3{}, geomerr.Degenerate("triangle.unit_normal", "points %v %v %v are collinear", a, b, c)
	}
	return n, nil
}

// Area is half the length of the normal.
func Area(a, b, c mathutil.Vec3) float64 {
	return Normal(a, b, c).Len() / 2
}
