// Package fresh counts the available ingredients that fall in a fresh ID
// range (Advent of Code 2025, day 5).
package fresh

import (
	"fmt"
	"io"

	"github.com/99xtal/aoc"
)

// Inventory is a parsed puzzle input.
type Inventory struct {
	Fresh       []aoc.Range
	Ingredients []int64
}

// Parse reads the range section, a blank line, then the ingredient
// section. Blank lines after the first are ignored.
func Parse(r io.Reader) (*Inventory, error) {
	var (
		inv      Inventory
		inRanges = true
	)
	err := aoc.ForLinesY(r, func(y int, line string) error {
		if inRanges {
			if line == "" {
				inRanges = false
				return nil
			}
			rng, err := aoc.ParseRange(line)
			if err != nil {
				return fmt.Errorf("line %d: %w", y+1, err)
			}
			inv.Fresh = append(inv.Fresh, rng)
			return nil
		}
		if line == "" {
			return nil
		}
		id, err := aoc.Int64(line)
		if err != nil {
			return fmt.Errorf("line %d: bad ingredient: %w", y+1, err)
		}
		inv.Ingredients = append(inv.Ingredients, id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// IsFresh reports whether id lies in any fresh range.
func (inv *Inventory) IsFresh(id int64) bool {
	for _, r := range inv.Fresh {
		if r.Contains(id) {
			return true
		}
	}
	return false
}

// CountFresh returns how many ingredients are fresh. Each ingredient
// counts once however many ranges hold it.
func (inv *Inventory) CountFresh() int64 {
	var n int64
	for _, id := range inv.Ingredients {
		if inv.IsFresh(id) {
			n++
		}
	}
	return n
}

// Solve returns the number of fresh ingredients listed in r.
func Solve(r io.Reader) (int64, error) {
	inv, err := Parse(r)
	if err != nil {
		return 0, err
	}
	return inv.CountFresh(), nil
}
