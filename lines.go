package aoc

import (
	"bufio"
	"fmt"
	"io"
)

// maxLineSize bounds a single input line. Inputs are read whole into memory,
// so this only guards against runaway buffers.
const maxLineSize = 16 << 20

// Scanner returns a line scanner over r. bufio.ScanLines drops the LF and a
// trailing CR, so CRLF input reads the same as LF input.
func Scanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64<<10), maxLineSize)
	return s
}

// ForLinesY calls onLine for each line of r, blank ones included.
// The y value is the row number, starting with 0. Iteration stops at
// the first error returned by onLine.
func ForLinesY(r io.Reader, onLine func(y int, line string) error) error {
	s := Scanner(r)
	y := -1
	for s.Scan() {
		y++
		if err := onLine(y, s.Text()); err != nil {
			return err
		}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

// ForLines calls onLine for each non-blank line of r.
func ForLines(r io.Reader, onLine func(line string) error) error {
	return ForLinesY(r, func(_ int, line string) error {
		if line == "" {
			return nil
		}
		return onLine(line)
	})
}
