package locdiff

import "github.com/99xtal/aoc"

// Puzzle is the locdiff command.
func Puzzle() aoc.Puzzle {
	return aoc.Puzzle{
		Name:        "locdiff",
		Description: "Calculate the total distance between two lists of location IDs contained in each FILE.",
		Solver: func() (aoc.SolveFunc, error) {
			return Solve, nil
		},
	}
}
