// The safecode command computes the door code from a list of safe dial rotations.
package main

import (
	"github.com/99xtal/aoc"
	"github.com/99xtal/aoc/safecode"
)

func main() {
	aoc.Main(safecode.Puzzle())
}
