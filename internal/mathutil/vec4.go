package mathutil

// Vec4 is a homogeneous (x, y, z, w) vector.
type Vec4 [4]float64

func (a Vec4) Dot(b Vec4) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

// XYZ drops w.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

func (v Vec4) W() float64 { return v[3] }
