package aoc

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Digits returns the individual digits of the leading run of ASCII digits
// in line. Everything from the first non-digit on is ignored.
func Digits(line string) []int {
	var in []int
	for i := 0; i < len(line); i++ {
		d, ok := Digit(line[i])
		if !ok {
			break
		}
		in = append(in, d)
	}
	return in
}

// Digit returns the digit value of the byte.
func Digit(c byte) (int, bool) {
	if c < '0' || c > '9' {
		return 0, false
	}
	return int(c - '0'), true
}

// LeadingDigits returns the prefix of s made of ASCII digits.
func LeadingDigits(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i]
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// FloorDiv returns a/b rounded toward negative infinity. b must be positive.
func FloorDiv[T constraints.Signed](a, b T) T {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// Mod returns a modulo b in [0, b). b must be positive.
func Mod[T constraints.Signed](a, b T) T {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// Int64 parses s, ignoring surrounding whitespace, as a base 10 int64.
func Int64(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

// Int64s parses each of s as a base 10 int64.
func Int64s(s ...string) ([]int64, error) {
	out := make([]int64, 0, len(s))
	for _, v := range s {
		n, err := Int64(v)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
