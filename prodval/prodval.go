// Package prodval sums the invalid product IDs found in a list of ranges
// (Advent of Code 2025, day 2).
package prodval

import (
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/99xtal/aoc"
)

// Rule reports whether an ID is invalid.
type Rule func(id int64) bool

// IsRepeated reports whether the decimal form of id is some shorter block
// of digits repeated at least twice, like 1212 or 777.
func IsRepeated(id int64) bool {
	s := strconv.FormatInt(id, 10)
	for n := 1; n < len(s); n++ {
		if len(s)%n == 0 && hasPeriod(s, n) {
			return true
		}
	}
	return false
}

// IsRepeatedTwice reports whether the decimal form of id is exactly two
// copies of the same block, like 6464.
func IsRepeatedTwice(id int64) bool {
	s := strconv.FormatInt(id, 10)
	if len(s)%2 != 0 {
		return false
	}
	return s[:len(s)/2] == s[len(s)/2:]
}

// hasPeriod reports whether s[i] == s[i-n] for every i >= n.
func hasPeriod(s string, n int) bool {
	for i := n; i < len(s); i++ {
		if s[i] != s[i-n] {
			return false
		}
	}
	return true
}

// InvalidSum returns the sum of the IDs in r for which invalid holds.
func InvalidSum(r aoc.Range, invalid Rule) int64 {
	var sum int64
	if r.Lo > r.Hi {
		return 0
	}
	for id := r.Lo; ; id++ {
		if invalid(id) {
			sum += id
		}
		// id++ would wrap at math.MaxInt64
		if id == r.Hi {
			return sum
		}
	}
}

// ParseRanges splits a comma separated list of ranges. Malformed entries
// are logged and left out.
func ParseRanges(line string) []aoc.Range {
	var out []aoc.Range
	for _, tok := range strings.Split(line, ",") {
		if strings.TrimSpace(tok) == "" {
			continue
		}
		r, err := aoc.ParseRange(tok)
		if err != nil {
			zap.L().Warn("skipping range", zap.Error(err))
			continue
		}
		out = append(out, r)
	}
	return out
}

// Solve sums the IDs in every range of r that invalid rejects.
func Solve(r io.Reader, invalid Rule) (int64, error) {
	var total int64
	err := aoc.ForLines(r, func(line string) error {
		for _, rng := range ParseRanges(line) {
			sum := InvalidSum(rng, invalid)
			zap.L().Debug("range",
				zap.Stringer("range", rng),
				zap.Int64("ids", rng.Len()),
				zap.Int64("invalid", sum))
			total += sum
		}
		return nil
	})
	return total, err
}
