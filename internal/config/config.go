package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"geomlab/internal/geomerr"
	"geomlab/internal/mathutil"
	"geomlab/internal/raster"
)

// Config holds runtime and presentation settings.
// Domain values (points, camera, field of view) are never configured here;
// they are explicit inputs of each command.
type Config struct {
	// Paths
	OutputDir string `json:"output_dir" env:"GEOMLAB_OUTPUT_DIR"`
	Backdrop  string `json:"backdrop"   env:"GEOMLAB_BACKDROP"`

	// Output settings
	Locale      string `json:"locale"      env:"GEOMLAB_LOCALE"`
	Engine      string `json:"engine"      env:"GEOMLAB_ENGINE"`
	Supersample int    `json:"supersample" env:"GEOMLAB_SUPERSAMPLE"`
	Verbose     bool   `json:"verbose"     env:"GEOMLAB_VERBOSE"`

	// Key light direction for shaded previews, "x,y,z" in the environment.
	Light []float64 `json:"light" env:"GEOMLAB_LIGHT"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// ParseEnv overlays GEOMLAB_* environment variables onto c.
// Unset variables leave the current values alone.
func (c *Config) ParseEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}

// Flags holds CLI flag values that override config file and environment.
type Flags struct {
	OutputDir   string
	Backdrop    string
	Locale      string
	Engine      string
	Supersample int
	Verbose     bool
	Light       mathutil.Vec3 // zero leaves the configured light alone
}

// Resolve applies flags and fills defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Backdrop != "" {
		c.Backdrop = flags.Backdrop
	}
	if flags.Locale != "" {
		c.Locale = flags.Locale
	}
	if flags.Engine != "" {
		c.Engine = flags.Engine
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Verbose {
		c.Verbose = true
	}
	if flags.Light != (mathutil.Vec3{}) {
		c.Light = flags.Light[:]
	}

	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.Engine == "" {
		c.Engine = "fixed"
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
}

// Validate rejects settings no command can honor.
func (c *Config) Validate() error {
	if c.Supersample > raster.MaxSupersample {
		return geomerr.Invalid("config", "supersample %d exceeds %d", c.Supersample, raster.MaxSupersample)
	}
	if len(c.Light) != 0 && len(c.Light) != 3 {
		return geomerr.Invalid("config", "light wants three components, got %d", len(c.Light))
	}
	return nil
}

// KeyLight returns the configured key light direction, zero when unset.
func (c *Config) KeyLight() mathutil.Vec3 {
	var v mathutil.Vec3
	if len(c.Light) == 3 {
		copy(v[:], c.Light)
	}
	return v
}

// OutputPath resolves name against OutputDir unless it is absolute.
func (c *Config) OutputPath(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.OutputDir, name)
}

// Build loads the optional config file, overlays the environment, then flags.
func Build(path string, flags Flags) (Config, error) {
	var cfg Config
	if path != "" {
		var err error
		cfg, err = Load(path)
		if err != nil {
			return Config{}, err
		}
	}
	if err := cfg.ParseEnv(); err != nil {
		return Config{}, err
	}
	cfg.Resolve(flags)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
