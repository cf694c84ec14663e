// The jolt command prints the largest joltage of a set of battery banks with two batteries on per bank.
package main

import (
	"github.com/99xtal/aoc"
	"github.com/99xtal/aoc/jolt"
)

func main() {
	aoc.Main(jolt.Puzzle())
}
