package camera

import (
	"math"

	"geomlab/internal/geomerr"
	"geomlab/internal/mathutil"
)

// Params configures the perspective projection and the output image.
type Params struct {
	FovY   float64 // vertical field of view, radians
	Aspect float64 // width / height of the view volume
	Near   float64
	Far    float64
	Width  float64 // output image width, pixels
	Height float64 // output image height, pixels
}

// ParamsDeg builds Params with the field of view given in degrees.
func ParamsDeg(fovYDeg, aspect, near, far, width, height float64) Params {
	return Params{
		FovY:   mathutil.Deg2Rad(fovYDeg),
		Aspect: aspect,
		Near:   near,
		Far:    far,
		Width:  width,
		Height: height,
	}
}

// Validate reports an ErrInvalidInput failure for out-of-range values.
func (p Params) Validate() error {
	const op = "camera.params"
	fields := []struct {
		name string
		v    float64
	}{
		{"fov", p.FovY}, {"aspect", p.Aspect}, {"near", p.Near},
		{"far", p.Far}, {"width", p.Width}, {"height", p.Height},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v <= 0 {
			return geomerr.Invalid(op, "%s must be positive and finite, got %g", f.name, f.v)
		}
	}
	if p.FovY >= math.Pi {
		return geomerr.Invalid(op, "fov must be below pi radians, got %g", p.FovY)
	}
	if p.Near >= p.Far {
		return geomerr.Invalid(op, "near (%g) must be less than far (%g)", p.Near, p.Far)
	}
	return nil
}
