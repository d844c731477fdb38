package camera

import (
	"math"

	"geomlab/internal/geomerr"
	"geomlab/internal/mathutil"
)

// Pixel is an image-space position: origin top-left, +Y down.
type Pixel struct {
	X, Y float64
}

// Stages records every intermediate value of one projection.
type Stages struct {
	Basis  Basis
	Camera mathutil.Vec3 // point in camera space
	Clip   mathutil.Vec4 // after the perspective matrix
	NDC    mathutil.Vec3 // after the homogeneous divide
	Pixel  Pixel
}

// InFront reports whether the point lies on the forward side of the camera.
// The pipeline does not clip: points behind the camera still get a pixel.
func (s Stages) InFront() bool {
	return s.Camera[2] > 0
}

// Perspective returns the OpenGL-style projection matrix for p.
func Perspective(p Params) mathutil.Mat4 {
	f := 1 / math.Tan(p.FovY/2)
	n, fa := p.Near, p.Far
	return mathutil.Mat4{
		f / p.Aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (fa + n) / (n - fa), (2 * fa * n) / (n - fa),
		0, 0, -1, 0,
	}
}

// NDCToPixel maps [-1, 1] device coordinates onto a width×height image.
// NDC +Y is up, pixel +Y is down.
func NDCToPixel(ndc mathutil.Vec3, width, height float64) Pixel {
	return Pixel{
		X: (ndc[0] + 1) * width / 2,
		Y: (1 - ndc[1]) * height / 2,
	}
}

// Project maps a world-space point to pixel coordinates for a camera at eye
// looking at the world origin.
func Project(point, eye, worldUp mathutil.Vec3, params Params) (Pixel, error) {
	return ProjectAt(point, eye, mathutil.Vec3{}, worldUp, params)
}

// ProjectAt is Project with an explicit look-at target.
func ProjectAt(point, eye, target, worldUp mathutil.Vec3, params Params) (Pixel, error) {
	s, err := Trace(point, eye, target, worldUp, params)
	if err != nil {
		return Pixel{}, err
	}
	return s.Pixel, nil
}

// Trace runs the projection pipeline and returns all of its stages.
func Trace(point, eye, target, worldUp mathutil.Vec3, params Params) (Stages, error) {
	return EngineFixed.Trace(point, eye, target, worldUp, params)
}

func traceFixed(point, eye, target, worldUp mathutil.Vec3, params Params) (Stages, error) {
	basis, err := NewBasis(eye, target, worldUp)
	if err != nil {
		return Stages{}, err
	}
	s := Stages{Basis: basis, Camera: basis.ToCamera(point, eye)}
	s.Clip = Perspective(params).MulVec4(s.Camera.Homogeneous(1))
	return finish(s, params)
}

func traceMatrix(point, eye, target, worldUp mathutil.Vec3, params Params) (Stages, error) {
	basis, err := NewBasis(eye, target, worldUp)
	if err != nil {
		return Stages{}, err
	}
	view := basis.View(eye)
	viewProj := mathutil.Mat4Mul(Perspective(params), view)
	s := Stages{
		Basis:  basis,
		Camera: view.MulPoint(point),
		Clip:   viewProj.MulVec4(point.Homogeneous(1)),
	}
	return finish(s, params)
}

// finish performs the homogeneous divide and the viewport mapping.
func finish(s Stages, params Params) (Stages, error) {
	w := s.Clip[3]
	if w == 0 {
		return Stages{}, geomerr.Degenerate("camera.project", "clip w is zero for camera-space point %v", s.Camera)
	}
	s.NDC = mathutil.Vec3{s.Clip[0] / w, s.Clip[1] / w, s.Clip[2] / w}
	s.Pixel = NDCToPixel(s.NDC, params.Width, params.Height)
	if math.IsNaN(s.Pixel.X) || math.IsInf(s.Pixel.X, 0) || math.IsNaN(s.Pixel.Y) || math.IsInf(s.Pixel.Y, 0) {
		return Stages{}, geomerr.Degenerate("camera.project", "pixel (%g, %g) is not finite", s.Pixel.X, s.Pixel.Y)
	}
	return s, nil
}
