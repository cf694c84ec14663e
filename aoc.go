// Package aoc holds the command harness shared by the puzzle binaries in
// this module, plus the small line, grid and number helpers the solvers
// are built from.
package aoc

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version is printed by -V/--version.
const Version = "0.1.0"

// Exit codes returned by Run.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// SolveFunc computes the answer for a single input.
type SolveFunc func(r io.Reader) (int64, error)

// Puzzle describes one solver binary.
type Puzzle struct {
	Name        string
	Description string

	// Flags, if non-nil, registers puzzle specific flags.
	Flags func(fs *pflag.FlagSet)

	// Solver returns the function to run once flags are parsed. An error
	// is reported like a bad option.
	Solver func() (SolveFunc, error)
}

// usageError marks errors caused by how the binary was invoked.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// Main runs p against the process arguments and exits.
func Main(p Puzzle) {
	os.Exit(Run(p, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// Run parses args, solves stdin or every named file in order, and
// returns the process exit code. It stops at the first failing input.
func Run(p Puzzle, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		flagVersion bool
		flagDebug   bool
	)
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logger := newLogger(stderr, level).Named(p.Name)
	defer zap.ReplaceGlobals(logger)()
	defer logger.Sync()

	cmd := &cobra.Command{
		Use:           p.Name + " [OPTION]... [FILE]...",
		Short:         p.Description,
		Long:          p.Description + "\n\nWith no FILE, read standard input.",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, paths []string) error {
			if flagVersion {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", p.Name, Version)
				return err
			}
			if flagDebug {
				level.SetLevel(zapcore.DebugLevel)
			}
			solve, err := p.Solver()
			if err != nil {
				return usageError{err}
			}
			return dispatch(solve, paths, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	if args == nil {
		// cobra falls back to os.Args on a nil slice.
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	fs := cmd.Flags()
	fs.SortFlags = false
	if p.Flags != nil {
		p.Flags(fs)
	}
	fs.BoolVar(&flagDebug, "debug", false, "log debug diagnostics to standard error")
	fs.BoolP("help", "h", false, "display this help and exit")
	fs.BoolVarP(&flagVersion, "version", "V", false, "display version information and exit")

	if err := cmd.Execute(); err != nil {
		var uerr usageError
		if errors.As(err, &uerr) {
			fmt.Fprintf(stderr, "%s: %v\n", p.Name, err)
			fmt.Fprint(stderr, cmd.UsageString())
			return ExitFailure
		}
		logger.Error("failed", zap.Error(err))
		return ExitFailure
	}
	return ExitSuccess
}

func dispatch(solve SolveFunc, paths []string, stdin io.Reader, stdout io.Writer) error {
	if len(paths) == 0 {
		n, err := solve(stdin)
		if err != nil {
			return fmt.Errorf("standard input: %w", err)
		}
		_, err = fmt.Fprintln(stdout, n)
		return err
	}
	for _, path := range paths {
		if err := solveFile(solve, path, stdout); err != nil {
			return err
		}
	}
	return nil
}

// solveFile keeps the file open only for the duration of one solve.
func solveFile(solve SolveFunc, path string, stdout io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	n, err := solve(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	_, err = fmt.Fprintln(stdout, n)
	return err
}

func newLogger(w io.Writer, level zap.AtomicLevel) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	enc.CallerKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core)
}
