// Package safecode works out the door code from a list of safe dial
// rotations (Advent of Code 2025, day 1).
package safecode

import (
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/99xtal/aoc"
)

const (
	// StartPosition is where the dial points before the first rotation.
	StartPosition = 50

	// DialSize is the number of positions on the dial.
	DialSize = 100
)

// ParseRotation parses "L<n>" or "R<n>" into a signed offset: negative for
// L, positive for R. Anything after the digits is ignored. ok is false for
// any other direction or a missing distance.
func ParseRotation(line string) (offset int64, ok bool) {
	if len(line) < 2 {
		return 0, false
	}
	dist, err := strconv.ParseInt(aoc.LeadingDigits(line[1:]), 10, 64)
	if err != nil {
		return 0, false
	}
	switch line[0] {
	case 'L':
		return -dist, true
	case 'R':
		return dist, true
	}
	return 0, false
}

// ReadRotations returns the offsets of every parseable line of r.
func ReadRotations(r io.Reader) ([]int64, error) {
	var out []int64
	err := aoc.ForLinesY(r, func(y int, line string) error {
		if line == "" {
			return nil
		}
		off, ok := ParseRotation(line)
		if !ok {
			zap.L().Debug("skipping rotation", zap.Int("line", y+1), zap.String("text", line))
			return nil
		}
		out = append(out, off)
		return nil
	})
	return out, err
}

// Dial tracks the position of the safe dial and how often it has hit 0.
type Dial struct {
	Pos   int64
	Zeros int64
}

// NewDial returns a dial at StartPosition.
func NewDial() *Dial {
	return &Dial{Pos: StartPosition}
}

// Turn rotates the dial by offset, counting every click that passes or
// lands on 0. Pos stays in [0, DialSize).
func (d *Dial) Turn(offset int64) {
	d.Zeros += Crossings(d.Pos, offset)
	d.Pos = aoc.Mod(d.Pos+offset, DialSize)
}

// Crossings returns the number of multiples of DialSize between p,
// exclusive, and p+offset, inclusive.
func Crossings(p, offset int64) int64 {
	switch {
	case offset > 0:
		return aoc.FloorDiv(p+offset, DialSize) - aoc.FloorDiv(p, DialSize)
	case offset < 0:
		return aoc.FloorDiv(p-1, DialSize) - aoc.FloorDiv(p+offset-1, DialSize)
	}
	return 0
}

// Secure returns the code under the current method: the number of times
// any click of any rotation leaves the dial at 0.
func Secure(rotations []int64) int64 {
	d := NewDial()
	for _, off := range rotations {
		from := d.Pos
		d.Turn(off)
		zap.L().Debug("turn",
			zap.Int64("from", from),
			zap.Int64("offset", off),
			zap.Int64("to", d.Pos),
			zap.Int64("zeros", d.Zeros))
	}
	return d.Zeros
}

// Legacy returns the code under the deprecated method: the number of
// rotations that end on 0. The position is never wrapped, so any multiple
// of DialSize counts.
func Legacy(rotations []int64) int64 {
	var (
		pos   int64 = StartPosition
		zeros int64
	)
	for _, off := range rotations {
		pos += off
		if pos%DialSize == 0 {
			zeros++
		}
	}
	return zeros
}

// Method computes a door code from rotations.
type Method func(rotations []int64) int64

// Solve reads the rotations in r and applies method.
func Solve(r io.Reader, method Method) (int64, error) {
	rots, err := ReadRotations(r)
	if err != nil {
		return 0, err
	}
	return method(rots), nil
}
