package aoc

import (
	"errors"
	"testing"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		in      string
		want    Range
		wantErr bool
	}{
		{in: "10-20", want: Range{10, 20}},
		{in: " 5-5\n", want: Range{5, 5}},
		{in: "0-1", want: Range{0, 1}},
		{in: "20-10", wantErr: true},
		{in: "10", wantErr: true},
		{in: "a-b", wantErr: true},
		{in: "1-", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseRange(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrBadRange) {
				t.Errorf("ParseRange(%q) err = %v, want ErrBadRange", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseRange(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{10, 20}
	for v, want := range map[int64]bool{9: false, 10: true, 15: true, 20: true, 21: false} {
		if got := r.Contains(v); got != want {
			t.Errorf("%v.Contains(%d) = %v, want %v", r, v, got, want)
		}
	}
	if got := r.Len(); got != 11 {
		t.Errorf("Len = %d, want 11", got)
	}
}
