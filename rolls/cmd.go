package rolls

import "github.com/99xtal/aoc"

// AccessiblePuzzle is the rolls-accessible command.
func AccessiblePuzzle() aoc.Puzzle {
	return aoc.Puzzle{
		Name:        "rolls-accessible",
		Description: "Given a FILE containing a map of paper rolls, count how many can be accessed.",
		Solver: func() (aoc.SolveFunc, error) {
			return CountAccessible, nil
		},
	}
}

// IteratedPuzzle is the rolls-iterated command.
func IteratedPuzzle() aoc.Puzzle {
	return aoc.Puzzle{
		Name:        "rolls-iterated",
		Description: "Given a FILE containing a map of paper rolls, count how many can be removed.",
		Solver: func() (aoc.SolveFunc, error) {
			return SolveIterated, nil
		},
	}
}
