package aoc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadRange is returned by ParseRange for anything that is not "low-high".
var ErrBadRange = errors.New("malformed range")

// Range is an inclusive span of integers. Lo <= Hi.
type Range struct {
	Lo, Hi int64
}

// ParseRange parses "low-high" with non-negative bounds.
func ParseRange(s string) (Range, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return Range{}, fmt.Errorf("%w: %q", ErrBadRange, s)
	}
	nums, err := Int64s(lo, hi)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrBadRange, s, err)
	}
	r := Range{nums[0], nums[1]}
	if r.Lo > r.Hi {
		return Range{}, fmt.Errorf("%w: %q: lower bound above upper bound", ErrBadRange, s)
	}
	return r, nil
}

// Contains reports whether v lies in r.
func (r Range) Contains(v int64) bool {
	return v >= r.Lo && v <= r.Hi
}

// Len returns the number of integers in r.
func (r Range) Len() int64 {
	return r.Hi - r.Lo + 1
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Lo, r.Hi)
}
