// The jolt-n command is jolt with the number of batteries set by -n.
package main

import (
	"github.com/99xtal/aoc"
	"github.com/99xtal/aoc/jolt"
)

func main() {
	aoc.Main(jolt.PuzzleN())
}
