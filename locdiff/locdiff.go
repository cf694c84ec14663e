// Package locdiff computes the total distance between two lists of
// location IDs (Advent of Code 2024, day 1).
package locdiff

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/99xtal/aoc"
)

// ReadColumns parses each non-blank line of r as two whitespace separated
// integers and returns the left and right columns.
func ReadColumns(r io.Reader) (left, right []int64, err error) {
	err = aoc.ForLinesY(r, func(y int, line string) error {
		if line == "" {
			return nil
		}
		n := y + 1
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return fmt.Errorf("line %d: want two numbers, got %q", n, line)
		}
		nums, err := aoc.Int64s(fields[0], fields[1])
		if err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
		left = append(left, nums[0])
		right = append(right, nums[1])
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

// Distance returns the sum of absolute differences between the columns
// once each is sorted ascending. The inputs are not modified.
func Distance(left, right []int64) int64 {
	left, right = slices.Clone(left), slices.Clone(right)
	slices.Sort(left)
	slices.Sort(right)

	var total int64
	for i := range left {
		total += aoc.AbsDiff(left[i], right[i])
	}
	return total
}

// Solve returns the total distance between the two columns of r.
func Solve(r io.Reader) (int64, error) {
	left, right, err := ReadColumns(r)
	if err != nil {
		return 0, err
	}
	return Distance(left, right), nil
}
