package fresh

import "github.com/99xtal/aoc"

// Puzzle is the fresh-ranges command.
func Puzzle() aoc.Puzzle {
	return aoc.Puzzle{
		Name:        "fresh-ranges",
		Description: "Given a FILE of fresh ingredient ID ranges and available ingredient IDs, count the fresh ingredients.",
		Solver: func() (aoc.SolveFunc, error) {
			return Solve, nil
		},
	}
}
