package safecode

import (
	"io"

	"github.com/spf13/pflag"

	"github.com/99xtal/aoc"
)

// Puzzle is the safecode command.
func Puzzle() aoc.Puzzle {
	var deprecated, current bool
	return aoc.Puzzle{
		Name:        "safecode",
		Description: "Given a FILE containing a list of safe dial rotations, calculate the door code for the North Pole base using password method 0x434C49434B.",
		Flags: func(fs *pflag.FlagSet) {
			fs.BoolVarP(&deprecated, "deprecated", "d", false, "use the deprecated password method")
			// -m names the default method; it only exists for older scripts.
			fs.BoolVarP(&current, "method", "m", false, "use password method 0x434C49434B (default)")
		},
		Solver: func() (aoc.SolveFunc, error) {
			method := Method(Secure)
			if deprecated {
				method = Legacy
			}
			return func(r io.Reader) (int64, error) {
				return Solve(r, method)
			}, nil
		},
	}
}
