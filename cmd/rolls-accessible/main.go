// The rolls-accessible command counts the paper rolls a forklift can reach.
package main

import (
	"github.com/99xtal/aoc"
	"github.com/99xtal/aoc/rolls"
)

func main() {
	aoc.Main(rolls.AccessiblePuzzle())
}
