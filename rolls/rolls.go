// Package rolls finds the paper rolls a forklift can reach (Advent of
// Code 2025, day 4).
//
// The input is a grid where '@' is a roll. A roll is accessible when fewer
// than four of its eight neighbors are rolls.
package rolls

import (
	"io"

	"go.uber.org/zap"

	"github.com/99xtal/aoc"
)

const (
	Roll  = '@'
	Empty = '.'

	// MaxCrowd is the neighbor count at which a roll stops being accessible.
	MaxCrowd = 4
)

// ParseGrid reads the grid in r. Short rows are padded with Empty.
func ParseGrid(r io.Reader) (aoc.Grid[byte], error) {
	return aoc.ReadByteGrid(r, Empty)
}

// Nearby returns the number of rolls around p, not counting p itself.
// Neighbors outside the grid are ignored.
func Nearby(g aoc.Grid[byte], p aoc.Pt) int {
	n := 0
	p.ForNeighbors(func(q aoc.Pt) bool {
		if v, ok := g.AtOk(q); ok && v == Roll {
			n++
		}
		return true
	})
	return n
}

// Accessible returns the rolls of g with fewer than MaxCrowd neighboring
// rolls, in row major order. g is not modified.
func Accessible(g aoc.Grid[byte]) []aoc.Pt {
	var out []aoc.Pt
	g.ForEach(func(p aoc.Pt, v byte) {
		if v == Roll && Nearby(g, p) < MaxCrowd {
			out = append(out, p)
		}
	})
	return out
}

// RemovePass removes every roll of g that is accessible when the pass
// begins and returns how many it removed. Removals within the pass do not
// change which other rolls are taken.
func RemovePass(g aoc.Grid[byte]) int {
	picked := Accessible(g)
	for _, p := range picked {
		g.Set(p, Empty)
	}
	return len(picked)
}

// RemoveAll runs passes over g until one leaves the grid unchanged and
// returns the total removed. g is modified in place.
func RemoveAll(g aoc.Grid[byte]) int64 {
	var total int64
	sum := g.Hash()
	for pass := 1; ; pass++ {
		removed := RemovePass(g)
		next := g.Hash()
		if next == sum {
			return total
		}
		sum = next
		total += int64(removed)
		zap.L().Debug("pass",
			zap.Int("pass", pass),
			zap.Int("removed", removed),
			zap.Stringer("hash", sum))
	}
}

// CountAccessible returns the number of accessible rolls in r.
func CountAccessible(r io.Reader) (int64, error) {
	g, err := ParseGrid(r)
	if err != nil {
		return 0, err
	}
	return int64(len(Accessible(g))), nil
}

// SolveIterated returns how many rolls can be removed from r in total.
func SolveIterated(r io.Reader) (int64, error) {
	g, err := ParseGrid(r)
	if err != nil {
		return 0, err
	}
	return RemoveAll(g), nil
}
