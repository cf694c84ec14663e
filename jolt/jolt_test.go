package jolt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99xtal/aoc"
)

const sample = `987654321111111
811111111111119
234234234234278
818181911112111
`

func TestMaxPair(t *testing.T) {
	tests := []struct {
		bank string
		want int64
	}{
		{"987654321111111", 98},
		{"811111111111119", 89},
		{"234234234234278", 78},
		{"818181911112111", 92},
		{"12345", 45},
		{"19", 19},
		{"90", 99},
		{"900", 99},
		{"500", 55},
		{"00", 0},
		{"7", 77},
		{"", 0},
	}
	for _, tt := range tests {
		if got := MaxPair(tt.bank); got != tt.want {
			t.Errorf("MaxPair(%q) = %d, want %d", tt.bank, got, tt.want)
		}
	}
}

func TestMaxJoltage(t *testing.T) {
	tests := []struct {
		bank string
		n    int
		want int64
	}{
		{"91234", 3, 934},
		{"987654321111111", 12, 987654321111},
		{"811111111111119", 12, 811111111119},
		{"234234234234278", 12, 434234234278},
		{"818181911112111", 12, 888911112111},
		{"12345", 5, 12345},
		{"12345", 1, 5},
		{"000", 2, 0},
	}
	for _, tt := range tests {
		got, err := MaxJoltage(tt.bank, tt.n)
		if err != nil || got != tt.want {
			t.Errorf("MaxJoltage(%q, %d) = %d, %v; want %d", tt.bank, tt.n, got, err, tt.want)
		}
	}
}

func TestMaxJoltageErrors(t *testing.T) {
	_, err := MaxJoltage("123", 4)
	assert.ErrorIs(t, err, ErrShortBank)
	_, err = MaxJoltage("123", 0)
	assert.Error(t, err)
}

func TestPickIsIncreasingSubsequence(t *testing.T) {
	banks := strings.Fields(sample + " 3141592653589793 1111 9876 5050505")
	for _, bank := range banks {
		for n := 1; n <= len(bank); n++ {
			picks, err := Pick(bank, n)
			require.NoError(t, err)
			require.Len(t, picks, n)
			for i := 1; i < len(picks); i++ {
				require.Less(t, picks[i-1], picks[i], "bank %q n=%d", bank, n)
			}
		}
	}
}

// With a nonzero digit after the first pick, the two solvers agree.
func TestMaxPairMatchesTwoBatteries(t *testing.T) {
	for _, bank := range strings.Fields(sample + " 12345 3141592653 7070") {
		pair := MaxPair(bank)
		two, err := MaxJoltage(bank, 2)
		require.NoError(t, err)
		assert.Equal(t, two, pair, "bank %q", bank)
	}
}

func TestSolve(t *testing.T) {
	got, err := Solve(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, int64(357), got)

	got, err = Solve(strings.NewReader("12345\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(45), got)

	// the bank ends at the first non-digit; banks with no digits are skipped
	got, err = Solve(strings.NewReader("19x99\n\nabc\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(19), got)

	// no nonzero digit after the first pick, and a one digit bank
	got, err = Solve(strings.NewReader("90\n500\n7\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(99+55+77), got)
}

func TestSolveN(t *testing.T) {
	got, err := SolveN(strings.NewReader(sample), DefaultBatteries)
	require.NoError(t, err)
	assert.Equal(t, int64(3121910778619), got)

	_, err = SolveN(strings.NewReader("12\n"), 3)
	assert.ErrorIs(t, err, ErrShortBank)
}

func runPuzzle(p aoc.Puzzle, stdin string, args ...string) (int, string) {
	var stdout, stderr bytes.Buffer
	code := aoc.Run(p, args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String()
}

func TestPuzzles(t *testing.T) {
	tests := []struct {
		name     string
		p        aoc.Puzzle
		args     []string
		in       string
		wantCode int
		wantOut  string
	}{
		{"jolt", Puzzle(), nil, "12345\n", aoc.ExitSuccess, "45\n"},
		{"jolt-n default", PuzzleN(), nil, sample, aoc.ExitSuccess, "3121910778619\n"},
		{"jolt-n short", PuzzleN(), []string{"-n", "3"}, "91234\n", aoc.ExitSuccess, "934\n"},
		{"jolt-n long", PuzzleN(), []string{"--number=3"}, "91234\n", aoc.ExitSuccess, "934\n"},
		{"jolt-n zero", PuzzleN(), []string{"-n", "0"}, "91234\n", aoc.ExitFailure, ""},
		{"jolt-n not a number", PuzzleN(), []string{"-n", "x"}, "91234\n", aoc.ExitFailure, ""},
		{"jolt rejects -n", Puzzle(), []string{"-n", "3"}, "91234\n", aoc.ExitFailure, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out := runPuzzle(tt.p, tt.in, tt.args...)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantOut, out)
		})
	}
}
