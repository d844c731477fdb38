package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// Command is one geomlab subcommand.
type Command struct {
	Name    string
	Summary string
	Run     func(fs *flag.FlagSet, args []string, out, errOut io.Writer) error
}

// Commands lists the subcommands in help order.
var Commands = []Command{
	{"project", "project a world-space point to pixel coordinates", func(fs *flag.FlagSet, args []string, out, errOut io.Writer) error {
		cfg, err := ParseProjectConfig(fs, args)
		if err != nil {
			return err
		}
		return RunProject(cfg, out, errOut)
	}},
	{"normal", "compute the (unnormalized) normal of a triangle", func(fs *flag.FlagSet, args []string, out, errOut io.Writer) error {
		cfg, err := ParseNormalConfig(fs, args)
		if err != nil {
			return err
		}
		return RunNormal(cfg, out, errOut)
	}},
	{"solve", "solve for the coefficients T and L of a linear combination", func(fs *flag.FlagSet, args []string, out, errOut io.Writer) error {
		cfg, err := ParseSolveConfig(fs, args)
		if err != nil {
			return err
		}
		return RunSolve(cfg, out, errOut)
	}},
	{"digits", "show the 4-bit binary clock", func(fs *flag.FlagSet, args []string, out, errOut io.Writer) error {
		cfg, err := ParseDigitsConfig(fs, args)
		if err != nil {
			return err
		}
		return RunDigits(cfg, out, errOut)
	}},
	{"run", "run the jobs of a JSON scenario file", func(fs *flag.FlagSet, args []string, out, errOut io.Writer) error {
		cfg, err := ParseRunConfig(fs, args)
		if err != nil {
			return err
		}
		return RunScenario(cfg, out, errOut)
	}},
}

// Main dispatches args[0] to its command and returns the process exit code.
func Main(args []string, out, errOut io.Writer) int {
	out, errOut = writers(out, errOut)
	if len(args) == 0 {
		Usage(errOut)
		return 2
	}

	name := args[0]
	switch name {
	case "help", "-h", "-help", "--help":
		Usage(out)
		return 0
	}

	for _, cmd := range Commands {
		if cmd.Name != name {
			continue
		}
		fs := flag.NewFlagSet(name, flag.ContinueOnError)
		fs.SetOutput(errOut)
		err := cmd.Run(fs, args[1:], out, errOut)
		switch {
		case err == nil:
			return 0
		case errors.Is(err, flag.ErrHelp):
			return 0
		}
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(errOut, "Error: unknown command %q\n\n", name)
	Usage(errOut)
	return 2
}

// Usage prints the command list.
func Usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: geomlab <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range Commands {
		fmt.Fprintf(w, "  %-8s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "  help     show this list")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'geomlab <command> -h' for the flags of a command.")
}
