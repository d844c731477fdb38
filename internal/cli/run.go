package cli

import (
	"flag"
	"fmt"
	"io"
	"log"

	"geomlab/internal/config"
	"geomlab/internal/scenario"
)

// RunConfig holds run command configuration.
type RunConfig struct {
	App      config.Config
	File     string
	Manifest string
}

// ParseRunConfig parses flags into a RunConfig. The scenario file is the
// first positional argument.
func ParseRunConfig(fs *flag.FlagSet, args []string) (RunConfig, error) {
	var c common
	var cfg RunConfig
	c.bind(fs)
	fs.StringVar(&cfg.Manifest, "manifest", "", "write a JSON manifest of the results")
	if err := fs.Parse(args); err != nil {
		return RunConfig{}, err
	}
	if fs.NArg() != 1 {
		return RunConfig{}, fmt.Errorf("run: expected one scenario file, got %d arguments", fs.NArg())
	}
	cfg.File = fs.Arg(0)

	app, err := c.build()
	if err != nil {
		return RunConfig{}, err
	}
	cfg.App = app
	return cfg, nil
}

// RunScenario runs every job in the scenario file and prints one line each.
// It fails when any job failed, after all jobs have run.
func RunScenario(cfg RunConfig, out, errOut io.Writer) error {
	out, errOut = writers(out, errOut)
	e, err := newEnv(cfg.App)
	if err != nil {
		return err
	}
	jobs, err := scenario.Load(cfg.File)
	if err != nil {
		return err
	}

	sc := scenario.Config{
		Printer:     e.printer,
		Engine:      e.engine,
		OutputDir:   cfg.App.OutputDir,
		Supersample: cfg.App.Supersample,
		Backdrop:    cfg.App.Backdrop,
		KeyLight:    cfg.App.KeyLight(),
	}
	if cfg.App.Verbose {
		sc.Log = log.New(errOut, "", 0)
	}
	results := scenario.Run(sc, jobs)

	for _, r := range results {
		if r.Success {
			fmt.Fprintf(out, "%s: %s\n", r.Name, r.Output)
			continue
		}
		kind := r.Kind
		if kind == "" {
			kind = "Error"
		}
		fmt.Fprintf(out, "%s: FAILED (%s) %s\n", r.Name, kind, r.Error)
	}

	if cfg.Manifest != "" {
		path := cfg.App.OutputPath(cfg.Manifest)
		if err := scenario.WriteManifest(path, results); err != nil {
			fmt.Fprintf(errOut, "Warning: manifest write failed: %v\n", err)
		} else {
			fmt.Fprintf(out, "Manifest: %s\n", path)
		}
	}

	if n := scenario.Failed(results); n > 0 {
		return fmt.Errorf("%d of %d jobs failed", n, len(results))
	}
	return nil
}
