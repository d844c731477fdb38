// Package cli implements the geomlab subcommands.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"geomlab/internal/camera"
	"geomlab/internal/config"
	"geomlab/internal/mathutil"
	"geomlab/internal/preview"
	"geomlab/internal/report"
)

// common holds the flags every command shares.
type common struct {
	configPath string
	flags      config.Flags
}

func (c *common) bind(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "path to config.json")
	fs.StringVar(&c.flags.OutputDir, "output", "", "directory for previews and manifests (default: .)")
	fs.StringVar(&c.flags.Backdrop, "backdrop", "", "image (.png, .jpg, .tga) drawn behind previews")
	fs.StringVar(&c.flags.Locale, "locale", "", "number formatting locale, e.g. pt-BR (default: plain)")
	fs.StringVar(&c.flags.Engine, "engine", "", "projection engine: fixed, loop or matrix (default: fixed)")
	fs.IntVar(&c.flags.Supersample, "supersample", 0, "preview supersampling factor, 1 to 8 (default: 2)")
	fs.BoolVar(&c.flags.Verbose, "v", false, "print intermediate values")
	vecVar(fs, &c.flags.Light, "light", mathutil.Vec3{}, "key light direction x,y,z for shaded previews")
}

func (c *common) build() (config.Config, error) {
	return config.Build(c.configPath, c.flags)
}

// env bundles what a command needs once its config is resolved.
type env struct {
	printer *report.Printer
	engine  camera.Engine
}

func newEnv(app config.Config) (env, error) {
	p, err := report.New(app.Locale)
	if err != nil {
		return env{}, err
	}
	e, err := camera.ParseEngine(app.Engine)
	if err != nil {
		return env{}, err
	}
	return env{printer: p, engine: e}, nil
}

func previewOptions(app config.Config, width, height float64) preview.Options {
	return preview.Options{
		Width:       int(width + 0.5),
		Height:      int(height + 0.5),
		Supersample: app.Supersample,
		Backdrop:    app.Backdrop,
		KeyLight:    app.KeyLight(),
	}
}

func writers(out, errOut io.Writer) (io.Writer, io.Writer) {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	return out, errOut
}

// vecValue is a flag.Value for "x,y,z".
type vecValue struct {
	v *mathutil.Vec3
}

func vecVar(fs *flag.FlagSet, p *mathutil.Vec3, name string, value mathutil.Vec3, usage string) {
	*p = value
	fs.Var(vecValue{p}, name, usage)
}

func (f vecValue) String() string {
	if f.v == nil {
		return ""
	}
	parts := make([]string, 3)
	for i, c := range f.v {
		parts[i] = strconv.FormatFloat(c, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (f vecValue) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return fmt.Errorf("want three comma-separated numbers, got %q", s)
	}
	var v mathutil.Vec3
	for i, p := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return fmt.Errorf("component %d: %w", i, err)
		}
		v[i] = x
	}
	*f.v = v
	return nil
}
