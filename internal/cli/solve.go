package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/njchilds90/gosymbol"

	"geomlab/internal/config"
	"geomlab/internal/geomerr"
	"geomlab/internal/symsolve"
)

// Solver variants.
const (
	VariantAffine   = "a" // a = c + T·u + L·v
	VariantComposed = "b" // a = c + k1·u - k2·v, then a = T·x + L·y
)

// SolveConfig holds solve command configuration. Empty forms take the
// reference values of the selected variant.
type SolveConfig struct {
	App     config.Config
	Variant string
	A       string
	C       string
	U       string
	V       string
	K1      string
	K2      string
}

var variantDefaults = map[string]SolveConfig{
	VariantAffine:   {A: "6x+5y", C: "-7x-6y", U: "2x+9y", V: "6x+6y"},
	VariantComposed: {C: "6x+4y", U: "5x+y", V: "2x+2y", K1: "7", K2: "1"},
}

// ParseSolveConfig parses flags into a SolveConfig.
func ParseSolveConfig(fs *flag.FlagSet, args []string) (SolveConfig, error) {
	var c common
	var cfg SolveConfig
	c.bind(fs)
	fs.StringVar(&cfg.Variant, "variant", VariantAffine, "a: a = c + T*u + L*v; b: a = c + k1*u - k2*v = T*x + L*y")
	fs.StringVar(&cfg.A, "va", "", "vector a (variant a)")
	fs.StringVar(&cfg.C, "vc", "", "vector c")
	fs.StringVar(&cfg.U, "vu", "", "vector u")
	fs.StringVar(&cfg.V, "vv", "", "vector v")
	fs.StringVar(&cfg.K1, "k1", "", "scalar k1 (variant b)")
	fs.StringVar(&cfg.K2, "k2", "", "scalar k2 (variant b)")
	if err := fs.Parse(args); err != nil {
		return SolveConfig{}, err
	}

	def, ok := variantDefaults[cfg.Variant]
	if !ok {
		return SolveConfig{}, geomerr.Invalid("cli.solve", "unknown variant %q (want a or b)", cfg.Variant)
	}
	fill := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}
	fill(&cfg.A, def.A)
	fill(&cfg.C, def.C)
	fill(&cfg.U, def.U)
	fill(&cfg.V, def.V)
	fill(&cfg.K1, def.K1)
	fill(&cfg.K2, def.K2)

	app, err := c.build()
	if err != nil {
		return SolveConfig{}, err
	}
	cfg.App = app
	return cfg, nil
}

// RunSolve solves for T and L and prints them to 3 decimal places.
func RunSolve(cfg SolveConfig, out, errOut io.Writer) error {
	out, _ = writers(out, errOut)
	e, err := newEnv(cfg.App)
	if err != nil {
		return err
	}

	parse := func(name, src string) (gosymbol.Expr, error) {
		f, err := symsolve.ParseForm(src)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return f, nil
	}
	c, err := parse("c", cfg.C)
	if err != nil {
		return err
	}
	u, err := parse("u", cfg.U)
	if err != nil {
		return err
	}
	v, err := parse("v", cfg.V)
	if err != nil {
		return err
	}

	var sol symsolve.Solution
	switch cfg.Variant {
	case VariantComposed:
		k1, err := parse("k1", cfg.K1)
		if err != nil {
			return err
		}
		k2, err := parse("k2", cfg.K2)
		if err != nil {
			return err
		}
		sol, err = symsolve.SolveComposed(c, u, v, k1, k2)
		if err != nil {
			return err
		}
	default:
		a, err := parse("a", cfg.A)
		if err != nil {
			return err
		}
		sol, err = symsolve.SolveAffine(a, c, u, v)
		if err != nil {
			return err
		}
	}

	if cfg.App.Verbose {
		fmt.Fprintf(out, "x: %s\n", sol.System[0])
		fmt.Fprintf(out, "y: %s\n", sol.System[1])
		fmt.Fprintf(out, "Exact: %s\n", sol.Exact())
	}
	fmt.Fprintln(out, e.printer.Solution(sol))
	return nil
}
