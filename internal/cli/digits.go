package cli

import (
	"flag"
	"fmt"
	"io"

	"geomlab/internal/config"
	"geomlab/internal/digits"
	"geomlab/internal/preview"
)

// DigitsConfig holds digits command configuration.
type DigitsConfig struct {
	App     config.Config
	Seconds int
	Width   float64
	Height  float64
	Preview string
}

// ParseDigitsConfig parses flags into a DigitsConfig.
func ParseDigitsConfig(fs *flag.FlagSet, args []string) (DigitsConfig, error) {
	var c common
	var cfg DigitsConfig
	c.bind(fs)
	fs.IntVar(&cfg.Seconds, "t", 0, "elapsed seconds; the clock shows t mod 16")
	fs.Float64Var(&cfg.Width, "width", 800, "preview width in pixels")
	fs.Float64Var(&cfg.Height, "height", 600, "preview height in pixels")
	fs.StringVar(&cfg.Preview, "preview", "", "write the clock face (.webp, .png or .tga)")
	if err := fs.Parse(args); err != nil {
		return DigitsConfig{}, err
	}

	app, err := c.build()
	if err != nil {
		return DigitsConfig{}, err
	}
	cfg.App = app
	return cfg, nil
}

// RunDigits prints the 4-bit clock value and optionally draws it.
func RunDigits(cfg DigitsConfig, out, errOut io.Writer) error {
	out, _ = writers(out, errOut)
	frame := digits.Frame(cfg.Seconds)
	fmt.Fprintf(out, "Clock %d: %s\n", digits.Value(cfg.Seconds), digits.String(frame))

	if cfg.App.Verbose {
		for i, d := range frame {
			fmt.Fprintf(out, "  bit %d = %d at x %.4f (%d triangles)\n", i, d.Bit, digits.Offsets[i]*digits.Shrink, len(d.Indices)/3)
		}
	}

	if cfg.Preview == "" {
		return nil
	}
	opts := previewOptions(cfg.App, cfg.Width, cfg.Height)
	opts.Background = digits.Background
	path := cfg.App.OutputPath(cfg.Preview)
	if err := preview.Write(path, digits.Scene(frame, cfg.Width, cfg.Height), opts); err != nil {
		return err
	}
	fmt.Fprintf(out, "Preview: %s\n", path)
	return nil
}
