package cli

import (
	"flag"
	"fmt"
	"io"

	"geomlab/internal/camera"
	"geomlab/internal/config"
	"geomlab/internal/mathutil"
	"geomlab/internal/preview"
)

// ProjectConfig holds project command configuration.
type ProjectConfig struct {
	App     config.Config
	Point   mathutil.Vec3
	Eye     mathutil.Vec3
	Target  mathutil.Vec3
	Up      mathutil.Vec3
	FovDeg  float64
	Aspect  float64 // 0: Width/Height
	Near    float64
	Far     float64
	Width   float64
	Height  float64
	Preview string
}

// ParseProjectConfig parses flags into a ProjectConfig. Defaults reproduce
// the reference camera scenario.
func ParseProjectConfig(fs *flag.FlagSet, args []string) (ProjectConfig, error) {
	var c common
	var cfg ProjectConfig
	c.bind(fs)
	vecVar(fs, &cfg.Point, "point", mathutil.Vec3{3, -2, 2}, "world-space point")
	vecVar(fs, &cfg.Eye, "eye", mathutil.Vec3{13, 2, -7}, "camera position")
	vecVar(fs, &cfg.Target, "target", mathutil.Vec3{}, "point the camera looks at")
	vecVar(fs, &cfg.Up, "up", mathutil.Vec3{0, 1, 0}, "world up direction")
	fs.Float64Var(&cfg.FovDeg, "fov", 60, "vertical field of view in degrees")
	fs.Float64Var(&cfg.Aspect, "aspect", 0, "aspect ratio (default: width/height)")
	fs.Float64Var(&cfg.Near, "near", 1, "near plane distance")
	fs.Float64Var(&cfg.Far, "far", 100, "far plane distance")
	fs.Float64Var(&cfg.Width, "width", 800, "image width in pixels")
	fs.Float64Var(&cfg.Height, "height", 600, "image height in pixels")
	fs.StringVar(&cfg.Preview, "preview", "", "write an image marking the pixel (.webp, .png or .tga)")
	if err := fs.Parse(args); err != nil {
		return ProjectConfig{}, err
	}
	if cfg.Aspect == 0 && cfg.Height != 0 {
		cfg.Aspect = cfg.Width / cfg.Height
	}

	app, err := c.build()
	if err != nil {
		return ProjectConfig{}, err
	}
	cfg.App = app
	return cfg, nil
}

// RunProject projects the point and prints its pixel.
func RunProject(cfg ProjectConfig, out, errOut io.Writer) error {
	out, errOut = writers(out, errOut)
	e, err := newEnv(cfg.App)
	if err != nil {
		return err
	}

	params := camera.ParamsDeg(cfg.FovDeg, cfg.Aspect, cfg.Near, cfg.Far, cfg.Width, cfg.Height)
	s, err := e.engine.Trace(cfg.Point, cfg.Eye, cfg.Target, cfg.Up, params)
	if err != nil {
		return err
	}

	if cfg.App.Verbose {
		p := e.printer
		fmt.Fprintf(out, "Engine:  %s\n", e.engine)
		fmt.Fprintf(out, "Right:   %s\n", p.Vec(s.Basis.Right))
		fmt.Fprintf(out, "Up:      %s\n", p.Vec(s.Basis.Up))
		fmt.Fprintf(out, "Forward: %s\n", p.Vec(s.Basis.Forward))
		fmt.Fprintf(out, "Camera:  %s\n", p.Vec(s.Camera))
		fmt.Fprintf(out, "Clip:    [%s %s %s %s]\n", p.Num(s.Clip[0]), p.Num(s.Clip[1]), p.Num(s.Clip[2]), p.Num(s.Clip[3]))
		fmt.Fprintf(out, "NDC:     %s\n", p.Vec(s.NDC))
	}
	if !s.InFront() {
		fmt.Fprintln(errOut, "Warning: point is behind the camera")
	}
	fmt.Fprintln(out, e.printer.Pixel(s.Pixel))

	if cfg.Preview == "" {
		return nil
	}
	path := cfg.App.OutputPath(cfg.Preview)
	if err := preview.Write(path, preview.Point(s.Pixel), previewOptions(cfg.App, cfg.Width, cfg.Height)); err != nil {
		return err
	}
	fmt.Fprintf(out, "Preview: %s\n", path)
	return nil
}
