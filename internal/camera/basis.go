package camera

import (
	"geomlab/internal/geomerr"
	"geomlab/internal/mathutil"
)

// Basis is the orthonormal camera frame. Forward points from the eye to the target.
type Basis struct {
	Right   mathutil.Vec3
	Up      mathutil.Vec3
	Forward mathutil.Vec3
}

// NewBasis builds the camera frame for an eye looking at target.
// Fails with ErrDegenerate when eye == target or worldUp is parallel to the view direction.
func NewBasis(eye, target, worldUp mathutil.Vec3) (Basis, error) {
	forward, err := target.Sub(eye).Normalize()
	if err != nil {
		return Basis{}, geomerr.Degenerate("camera.basis", "eye %v coincides with target %v", eye, target)
	}

	side := worldUp.Cross(forward)
	if side.Len() <= mathutil.Eps*worldUp.Len() || side.Len() == 0 {
		return Basis{}, geomerr.Degenerate("camera.basis", "up %v is parallel to view direction %v", worldUp, forward)
	}
	right, err := side.Normalize()
	if err != nil {
		return Basis{}, err
	}

	// Unit length already: forward and right are orthonormal.
	up := forward.Cross(right)

	return Basis{Right: right, Up: up, Forward: forward}, nil
}

// Matrix returns the rows [right, up, forward].
func (b Basis) Matrix() mathutil.Mat3 {
	return mathutil.Mat3FromRows(b.Right, b.Up, b.Forward)
}

// ToCamera expresses a world-space point in camera space.
func (b Basis) ToCamera(p, eye mathutil.Vec3) mathutil.Vec3 {
	return b.Matrix().MulVec3(p.Sub(eye))
}

// View returns the 4×4 world-to-camera transform.
func (b Basis) View(eye mathutil.Vec3) mathutil.Mat4 {
	m := b.Matrix()
	return mathutil.FromMat3Translation(m, m.MulVec3(eye).Neg())
}
