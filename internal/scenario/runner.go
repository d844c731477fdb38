package scenario

import (
	"fmt"
	"log"
	"math"
	"path/filepath"
	"sort"
	"time"

	"github.com/njchilds90/gosymbol"

	"geomlab/internal/camera"
	"geomlab/internal/geomerr"
	"geomlab/internal/imageio"
	"geomlab/internal/mathutil"
	"geomlab/internal/preview"
	"geomlab/internal/report"
	"geomlab/internal/symsolve"
	"geomlab/internal/triangle"
)

// Projection defaults for jobs that leave a camera value out.
const (
	DefaultFovDeg = 60.0
	DefaultNear   = 1.0
	DefaultFar    = 100.0
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
	DefaultScale  = 2.0
)

// DefaultNormalEye is where the camera sits when a normal job asks for a
// preview without naming an eye.
var DefaultNormalEye = mathutil.Vec3{0, 0, 25}

// Config holds the shared settings for a run.
type Config struct {
	Printer     *report.Printer
	Engine      camera.Engine // used when a job names none
	OutputDir   string        // relative preview paths resolve here
	Supersample int
	Backdrop    string
	KeyLight    mathutil.Vec3  // zero keeps the default lighting
	Log         *log.Logger    // optional progress log
	Images      *imageio.Cache // backdrop cache; one per run when nil
}

// Result holds the outcome of one job.
type Result struct {
	Name    string
	Op      string
	Success bool
	Output  string
	Preview string
	Error   string
	Kind    string
}

// Run executes jobs in order. A failing job is recorded and the rest still run.
func Run(cfg Config, jobs []Job) []Result {
	if cfg.Printer == nil {
		cfg.Printer = &report.Printer{}
	}
	if cfg.Images == nil {
		cfg.Images = imageio.NewCache()
	}
	results := make([]Result, len(jobs))
	start := time.Now()

	for i, job := range jobs {
		results[i] = runJob(cfg, job)
		if cfg.Log != nil {
			r := results[i]
			status := r.Output
			if !r.Success {
				status = "FAILED: " + r.Error
			}
			cfg.Log.Printf("  [%d/%d] %s (%s) %s", i+1, len(jobs), r.Name, r.Op, status)
		}
	}

	if cfg.Log != nil {
		cfg.Log.Printf("Ran %d jobs in %s, %d failed", len(jobs), time.Since(start).Round(time.Millisecond), Failed(results))
	}
	return results
}

// Failed counts unsuccessful results.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Success {
			n++
		}
	}
	return n
}

func runJob(cfg Config, job Job) Result {
	res := Result{Name: job.Name, Op: job.Op}

	var err error
	switch job.Op {
	case OpProject:
		res.Output, res.Preview, err = runProject(cfg, job)
	case OpNormal:
		res.Output, res.Preview, err = runNormal(cfg, job)
	case OpSolveAffine:
		res.Output, err = runSolveAffine(cfg, job)
	case OpSolveComposed:
		res.Output, err = runSolveComposed(cfg, job)
	default:
		err = geomerr.Invalid("scenario.run", "unknown op %q", job.Op)
	}

	if err != nil {
		res.Output = ""
		res.Error = err.Error()
		res.Kind = geomerr.KindName(err)
		return res
	}
	res.Success = true
	return res
}

// cameraFor fills the camera defaults of job.
func cameraFor(cfg Config, job Job, eyeDefault *mathutil.Vec3) (eye, target, up mathutil.Vec3, params camera.Params, engine camera.Engine, err error) {
	switch {
	case job.Eye != nil:
		eye = *job.Eye
	case eyeDefault != nil:
		eye = *eyeDefault
	default:
		err = geomerr.Invalid("scenario."+job.Op, "eye is required")
		return
	}
	if job.Target != nil {
		target = *job.Target
	}
	up = mathutil.Vec3{0, 1, 0}
	if job.Up != nil {
		up = *job.Up
	}

	fov := orDefault(job.FovDeg, DefaultFovDeg)
	near := orDefault(job.Near, DefaultNear)
	far := orDefault(job.Far, DefaultFar)
	w := orDefault(job.Width, DefaultWidth)
	h := orDefault(job.Height, DefaultHeight)
	aspect := orDefault(job.Aspect, w/h)
	params = camera.ParamsDeg(fov, aspect, near, far, w, h)

	engine = cfg.Engine
	if job.Engine != "" {
		engine, err = camera.ParseEngine(job.Engine)
	}
	return
}

func runProject(cfg Config, job Job) (string, string, error) {
	if job.Point == nil {
		return "", "", geomerr.Invalid("scenario.project", "point is required")
	}
	eye, target, up, params, engine, err := cameraFor(cfg, job, nil)
	if err != nil {
		return "", "", err
	}
	s, err := engine.Trace(*job.Point, eye, target, up, params)
	if err != nil {
		return "", "", err
	}

	out := cfg.Printer.Pixel(s.Pixel)
	if job.Preview == "" {
		return out, "", nil
	}
	path := previewPath(cfg, job.Preview)
	if err := preview.Write(path, preview.Point(s.Pixel), previewOptions(cfg, params)); err != nil {
		return "", "", err
	}
	return out, path, nil
}

func runNormal(cfg Config, job Job) (string, string, error) {
	if job.A == nil || job.B == nil || job.C == nil {
		return "", "", geomerr.Invalid("scenario.normal", "a, b and c are required")
	}
	a, b, c := *job.A, *job.B, *job.C
	scale := orDefault(job.Scale, DefaultScale)

	out := cfg.Printer.Normal(triangle.Normal(a, b, c)) + "; " +
		cfg.Printer.Scaled(triangle.ScaledNormal(a, b, c, scale), scale)
	if job.Preview == "" {
		return out, "", nil
	}

	eye, target, up, params, engine, err := cameraFor(cfg, job, &DefaultNormalEye)
	if err != nil {
		return "", "", err
	}
	scene, err := preview.Triangle(a, b, c, eye, target, up, params, engine)
	if err != nil {
		return "", "", err
	}
	path := previewPath(cfg, job.Preview)
	if err := preview.Write(path, scene, previewOptions(cfg, params)); err != nil {
		return "", "", err
	}
	return out, path, nil
}

func runSolveAffine(cfg Config, job Job) (string, error) {
	f, err := forms(job, "a", "c", "u", "v")
	if err != nil {
		return "", err
	}
	sol, err := symsolve.SolveAffine(f["a"], f["c"], f["u"], f["v"])
	if err != nil {
		return "", err
	}
	return cfg.Printer.Solution(sol), nil
}

func runSolveComposed(cfg Config, job Job) (string, error) {
	f, err := forms(job, "c", "u", "v")
	if err != nil {
		return "", err
	}
	if job.K1 == "" || job.K2 == "" {
		return "", geomerr.Invalid("scenario.solve-composed", "k1 and k2 are required")
	}
	k1, err := symsolve.ParseForm(job.K1)
	if err != nil {
		return "", fmt.Errorf("k1: %w", err)
	}
	k2, err := symsolve.ParseForm(job.K2)
	if err != nil {
		return "", fmt.Errorf("k2: %w", err)
	}
	sol, err := symsolve.SolveComposed(f["c"], f["u"], f["v"], k1, k2)
	if err != nil {
		return "", err
	}
	return cfg.Printer.Solution(sol), nil
}

// forms parses the named linear forms of job.
func forms(job Job, names ...string) (map[string]gosymbol.Expr, error) {
	var missing []string
	out := make(map[string]gosymbol.Expr, len(names))
	for _, name := range names {
		src, ok := job.Forms[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		e, err := symsolve.ParseForm(src)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out[name] = e
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, geomerr.Invalid("scenario."+job.Op, "missing forms %v", missing)
	}
	return out, nil
}

func previewPath(cfg Config, name string) string {
	if cfg.OutputDir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(cfg.OutputDir, name)
}

func previewOptions(cfg Config, p camera.Params) preview.Options {
	return preview.Options{
		Width:       int(math.Round(p.Width)),
		Height:      int(math.Round(p.Height)),
		Supersample: cfg.Supersample,
		Backdrop:    cfg.Backdrop,
		Images:      cfg.Images,
		KeyLight:    cfg.KeyLight,
	}
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
