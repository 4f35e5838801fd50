package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dshills/battlepoints/internal/args"
	"github.com/dshills/battlepoints/internal/battle"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	root := newRootCmd(os.Stdout, os.Stderr)

	if err := root.Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, ee.msg)
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "battlepoints <twins> <tpoints> <mdamage> [--multi X] [--divi Y]",
		Short: "Calculate Pokemon TCG battle points",
		Long: `Calculate Pokemon TCG battle points from total wins, total points and max damage.

  points = (twins*multi - tpoints) + (ceil(tpoints/divi) - twins) + mdamage

Flags (after the three numbers, any order):
  --multi X     multiplier for wins (default 3)
  --divi Y      divisor for points (default 3)
  --format F    output format: text, json or yaml (default text)
  --verbose     print processing steps to stderr

Unrecognized arguments are ignored.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		// Negative numbers and unknown tokens must reach args.Parse untouched.
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, argv []string) error {
			if len(argv) > 0 && (argv[0] == "-h" || argv[0] == "--help") {
				return cmd.Help()
			}
			return runCompute(argv, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "battlepoints %s\n", version)
			return err
		},
	}
}

type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func exitError(code int, format string, a ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, a...)}
}

// Exit codes.
const (
	exitUsage   = 1
	exitParse   = 2
	exitDivisor = 3
)

// classify maps a parse or compute failure onto its exit code.
func classify(err error) error {
	var ue *args.UsageError
	var pe *args.ParseError
	switch {
	case errors.As(err, &ue):
		return exitError(exitUsage, "%s", args.Usage)
	case errors.As(err, &pe):
		return exitError(exitParse, "%v", pe)
	case errors.Is(err, battle.ErrInvalidDivisor):
		return exitError(exitDivisor, "%v", err)
	}
	return err
}
