package jolt

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/99xtal/aoc"
)

const description = "Given a FILE containing a list of battery bank joltages, find the largest possible joltage."

// Puzzle is the jolt command: two batteries per bank.
func Puzzle() aoc.Puzzle {
	return aoc.Puzzle{
		Name:        "jolt",
		Description: description,
		Solver: func() (aoc.SolveFunc, error) {
			return Solve, nil
		},
	}
}

// PuzzleN is the jolt-n command, which takes the battery count from -n.
func PuzzleN() aoc.Puzzle {
	var n int
	return aoc.Puzzle{
		Name:        "jolt-n",
		Description: description,
		Flags: func(fs *pflag.FlagSet) {
			fs.IntVarP(&n, "number", "n", DefaultBatteries, "number of batteries to turn on in each bank")
		},
		Solver: func() (aoc.SolveFunc, error) {
			if n < 1 {
				return nil, fmt.Errorf("invalid battery count %d: must be positive", n)
			}
			return func(r io.Reader) (int64, error) {
				return SolveN(r, n)
			}, nil
		},
	}
}
