package camera

import (
	"geomlab/internal/geomerr"
	"geomlab/internal/mathutil"
)

// Engine selects the arithmetic used by the projection pipeline.
// All engines produce the same result to within 1e-6.
type Engine string

const (
	EngineFixed  Engine = "fixed"  // fixed-size vector/matrix value types
	EngineLoop   Engine = "loop"   // dimension-checked slice loops
	EngineMatrix Engine = "matrix" // one combined projection×view matrix
)

// Engines lists every engine in a stable order.
var Engines = []Engine{EngineFixed, EngineLoop, EngineMatrix}

// ParseEngine accepts an engine name; "" selects EngineFixed.
func ParseEngine(s string) (Engine, error) {
	if s == "" {
		return EngineFixed, nil
	}
	for _, e := range Engines {
		if string(e) == s {
			return e, nil
		}
	}
	return "", geomerr.Invalid("camera.engine", "unknown engine %q (want fixed, loop or matrix)", s)
}

// Trace runs the pipeline with engine e.
func (e Engine) Trace(point, eye, target, worldUp mathutil.Vec3, params Params) (Stages, error) {
	if err := params.Validate(); err != nil {
		return Stages{}, err
	}
	switch e {
	case EngineFixed, "":
		return traceFixed(point, eye, target, worldUp, params)
	case EngineLoop:
		return traceLoop(point, eye, target, worldUp, params)
	case EngineMatrix:
		return traceMatrix(point, eye, target, worldUp, params)
	}
	return Stages{}, geomerr.Invalid("camera.project", "unknown engine %q", string(e))
}

// traceLoop follows the pipeline step by step on plain slices.
func traceLoop(point, eye, target, worldUp mathutil.Vec3, params Params) (Stages, error) {
	d, err := mathutil.Sub(target[:], eye[:])
	if err != nil {
		return Stages{}, err
	}
	forward, err := mathutil.Normalize(d)
	if err != nil {
		return Stages{}, geomerr.Degenerate("camera.basis", "eye %v coincides with target %v", eye, target)
	}
	side, err := mathutil.Cross(worldUp[:], forward)
	if err != nil {
		return Stages{}, err
	}
	if n := mathutil.Norm(side); n <= mathutil.Eps*mathutil.Norm(worldUp[:]) || n == 0 {
		return Stages{}, geomerr.Degenerate("camera.basis", "up %v is parallel to view direction %v", worldUp, forward)
	}
	right, err := mathutil.Normalize(side)
	if err != nil {
		return Stages{}, err
	}
	up, err := mathutil.Cross(forward, right)
	if err != nil {
		return Stages{}, err
	}

	rel, err := mathutil.Sub(point[:], eye[:])
	if err != nil {
		return Stages{}, err
	}
	pCam, err := mathutil.MatVec([][]float64{right, up, forward}, rel)
	if err != nil {
		return Stages{}, err
	}

	proj := Perspective(params)
	rows := make([][]float64, 4)
	for r := range rows {
		rows[r] = proj[r*4 : r*4+4]
	}
	clip, err := mathutil.MatVec(rows, mathutil.Append(pCam, 1))
	if err != nil {
		return Stages{}, err
	}

	s := Stages{
		Basis: Basis{
			Right:   mathutil.Vec3(right),
			Up:      mathutil.Vec3(up),
			Forward: mathutil.Vec3(forward),
		},
		Camera: mathutil.Vec3(pCam),
		Clip:   mathutil.Vec4(clip),
	}
	return finish(s, params)
}
