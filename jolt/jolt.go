// Package jolt finds the largest joltage each battery bank can produce
// (Advent of Code 2025, day 3).
//
// A bank is a line of digits. Turning on batteries picks digits in order;
// the joltage is the number those digits spell.
package jolt

import (
	"errors"
	"fmt"
	"io"

	"github.com/99xtal/aoc"
)

// DefaultBatteries is the number of batteries turned on per bank by jolt-n.
const DefaultBatteries = 12

// ErrShortBank is returned when a bank has fewer digits than batteries.
var ErrShortBank = errors.New("bank has fewer digits than batteries")

// Bank returns the leading run of digits in line.
func Bank(line string) string {
	return aoc.LeadingDigits(line)
}

// MaxPair returns the two digit joltage of bank. The first digit is the
// first occurrence of the largest digit that still leaves one digit after
// it. The second is the first occurrence of the largest nonzero digit after
// that; when there is none the second index stays at 0, so "90" is 99 and
// a one digit bank d is d*11.
func MaxPair(bank string) int64 {
	digits := aoc.Digits(bank)
	if len(digits) == 0 {
		return 0
	}

	first, best := 0, 0
	for i := 0; i < len(digits)-1; i++ {
		if digits[i] > best {
			first, best = i, digits[i]
		}
	}
	second, best := 0, 0
	for i := first + 1; i < len(digits); i++ {
		if digits[i] > best {
			second, best = i, digits[i]
		}
	}
	return int64(digits[first]*10 + digits[second])
}

// Pick returns the indexes of the n digits of bank that form the largest
// number while keeping their order. Each pick is the first maximum of the
// window that still leaves room for the remaining picks.
func Pick(bank string, n int) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("battery count must be positive, got %d", n)
	}
	if len(bank) < n {
		return nil, fmt.Errorf("%w: %q needs %d", ErrShortBank, bank, n)
	}
	digits := aoc.Digits(bank)

	picks := make([]int, 0, n)
	start := 0
	for k := 0; k < n; k++ {
		end := len(digits) - n + k
		best := start
		for i := start + 1; i <= end; i++ {
			if digits[i] > digits[best] {
				best = i
			}
		}
		picks = append(picks, best)
		start = best + 1
	}
	return picks, nil
}

// MaxJoltage returns the largest joltage of bank with n batteries on.
func MaxJoltage(bank string, n int) (int64, error) {
	picks, err := Pick(bank, n)
	if err != nil {
		return 0, err
	}
	var v int64
	for _, i := range picks {
		v = v*10 + int64(bank[i]-'0')
	}
	return v, nil
}

// Solve sums MaxPair over every bank of r.
func Solve(r io.Reader) (int64, error) {
	return sumBanks(r, func(bank string) (int64, error) {
		return MaxPair(bank), nil
	})
}

// SolveN sums MaxJoltage with n batteries over every bank of r.
func SolveN(r io.Reader, n int) (int64, error) {
	return sumBanks(r, func(bank string) (int64, error) {
		return MaxJoltage(bank, n)
	})
}

func sumBanks(r io.Reader, joltage func(string) (int64, error)) (int64, error) {
	var total int64
	err := aoc.ForLinesY(r, func(y int, line string) error {
		bank := Bank(line)
		if bank == "" {
			return nil
		}
		v, err := joltage(bank)
		if err != nil {
			return fmt.Errorf("line %d: %w", y+1, err)
		}
		total += v
		return nil
	})
	return total, err
}
