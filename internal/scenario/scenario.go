// Package scenario runs a list of independent geometry jobs read from JSON.
package scenario

import (
	"encoding/json"
	"fmt"
	"os"

	"geomlab/internal/mathutil"
)

// Operations a job may name.
const (
	OpProject       = "project"
	OpNormal        = "normal"
	OpSolveAffine   = "solve-affine"
	OpSolveComposed = "solve-composed"
)

// Job is one operation and its inputs. Fields not used by Op are ignored.
type Job struct {
	Name string `json:"name"`
	Op   string `json:"op"`

	// project
	Point  *mathutil.Vec3 `json:"point,omitempty"`
	Eye    *mathutil.Vec3 `json:"eye,omitempty"`
	Target *mathutil.Vec3 `json:"target,omitempty"` // default origin
	Up     *mathutil.Vec3 `json:"up,omitempty"`     // default +y
	FovDeg float64        `json:"fov_deg,omitempty"`
	Aspect float64        `json:"aspect,omitempty"` // default width/height
	Near   float64        `json:"near,omitempty"`
	Far    float64        `json:"far,omitempty"`
	Width  float64        `json:"width,omitempty"`
	Height float64        `json:"height,omitempty"`
	Engine string         `json:"engine,omitempty"`

	// normal
	A     *mathutil.Vec3 `json:"a,omitempty"`
	B     *mathutil.Vec3 `json:"b,omitempty"`
	C     *mathutil.Vec3 `json:"c,omitempty"`
	Scale float64        `json:"scale,omitempty"`

	// solve-affine uses a, c, u, v; solve-composed uses c, u, v, k1, k2.
	Forms map[string]string `json:"forms,omitempty"`
	K1    string            `json:"k1,omitempty"`
	K2    string            `json:"k2,omitempty"`

	// optional image for project and normal
	Preview string `json:"preview,omitempty"`
}

// File is the on-disk scenario layout.
type File struct {
	Jobs []Job `json:"jobs"`
}

// Load reads a scenario file.
func Load(path string) ([]Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("scenario: parse %s: %w", path, err)
	}
	if len(f.Jobs) == 0 {
		return nil, fmt.Errorf("scenario: %s has no jobs", path)
	}

	for i := range f.Jobs {
		if f.Jobs[i].Name == "" {
			f.Jobs[i].Name = fmt.Sprintf("job-%d", i+1)
		}
	}
	return f.Jobs, nil
}
