package cli

import (
	"flag"
	"fmt"
	"io"

	"geomlab/internal/camera"
	"geomlab/internal/config"
	"geomlab/internal/mathutil"
	"geomlab/internal/preview"
	"geomlab/internal/triangle"
)

// NormalConfig holds normal command configuration.
type NormalConfig struct {
	App     config.Config
	A, B, C mathutil.Vec3
	Scale   float64

	// preview camera
	Eye, Target, Up mathutil.Vec3
	FovDeg          float64
	Width, Height   float64
	Preview         string
}

// ParseNormalConfig parses flags into a NormalConfig. Defaults reproduce
// the reference triangle.
func ParseNormalConfig(fs *flag.FlagSet, args []string) (NormalConfig, error) {
	var c common
	var cfg NormalConfig
	c.bind(fs)
	vecVar(fs, &cfg.A, "a", mathutil.Vec3{-1, -5, -3}, "first vertex")
	vecVar(fs, &cfg.B, "b", mathutil.Vec3{7, 0, -1}, "second vertex")
	vecVar(fs, &cfg.C, "c", mathutil.Vec3{-6, 9, 0}, "third vertex")
	fs.Float64Var(&cfg.Scale, "scale", 2, "factor for the scaled normal")
	vecVar(fs, &cfg.Eye, "eye", mathutil.Vec3{0, 0, 25}, "preview camera position")
	vecVar(fs, &cfg.Target, "target", mathutil.Vec3{}, "preview camera target")
	vecVar(fs, &cfg.Up, "up", mathutil.Vec3{0, 1, 0}, "preview camera up direction")
	fs.Float64Var(&cfg.FovDeg, "fov", 60, "preview vertical field of view in degrees")
	fs.Float64Var(&cfg.Width, "width", 800, "preview width in pixels")
	fs.Float64Var(&cfg.Height, "height", 600, "preview height in pixels")
	fs.StringVar(&cfg.Preview, "preview", "", "write a shaded image of the triangle (.webp, .png or .tga)")
	if err := fs.Parse(args); err != nil {
		return NormalConfig{}, err
	}

	app, err := c.build()
	if err != nil {
		return NormalConfig{}, err
	}
	cfg.App = app
	return cfg, nil
}

// RunNormal prints the triangle normal and its scaled form.
func RunNormal(cfg NormalConfig, out, errOut io.Writer) error {
	out, _ = writers(out, errOut)
	e, err := newEnv(cfg.App)
	if err != nil {
		return err
	}

	n := triangle.Normal(cfg.A, cfg.B, cfg.C)
	fmt.Fprintln(out, e.printer.Normal(n))
	fmt.Fprintln(out, e.printer.Scaled(triangle.ScaledNormal(cfg.A, cfg.B, cfg.C, cfg.Scale), cfg.Scale))

	if cfg.App.Verbose {
		if u, err := triangle.UnitNormal(cfg.A, cfg.B, cfg.C); err == nil {
			fmt.Fprintf(out, "Unit normal: %s\n", e.printer.Vec(u))
		} else {
			fmt.Fprintln(out, "Unit normal: undefined (collinear vertices)")
		}
		fmt.Fprintf(out, "Area: %s\n", e.printer.Sprintf("%.4f", triangle.Area(cfg.A, cfg.B, cfg.C)))
	}

	if cfg.Preview == "" {
		return nil
	}
	params := camera.ParamsDeg(cfg.FovDeg, cfg.Width/cfg.Height, 1, 100, cfg.Width, cfg.Height)
	scene, err := preview.Triangle(cfg.A, cfg.B, cfg.C, cfg.Eye, cfg.Target, cfg.Up, params, e.engine)
	if err != nil {
		return err
	}
	path := cfg.App.OutputPath(cfg.Preview)
	if err := preview.Write(path, scene, previewOptions(cfg.App, cfg.Width, cfg.Height)); err != nil {
		return err
	}
	fmt.Fprintf(out, "Preview: %s\n", path)
	return nil
}
