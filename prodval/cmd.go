package prodval

import (
	"io"

	"github.com/spf13/pflag"

	"github.com/99xtal/aoc"
)

// Puzzle is the prodval command.
func Puzzle() aoc.Puzzle {
	var twice bool
	return aoc.Puzzle{
		Name:        "prodval",
		Description: "Calculate the sum of all invalid product IDs in a set of ranges given in FILE.",
		Flags: func(fs *pflag.FlagSet) {
			fs.BoolVarP(&twice, "twice", "t", false, "only count IDs made of a block repeated exactly twice")
		},
		Solver: func() (aoc.SolveFunc, error) {
			rule := Rule(IsRepeated)
			if twice {
				rule = IsRepeatedTwice
			}
			return func(r io.Reader) (int64, error) {
				return Solve(r, rule)
			}, nil
		},
	}
}
