// The locdiff command prints the total distance between two lists of location IDs.
package main

import (
	"github.com/99xtal/aoc"
	"github.com/99xtal/aoc/locdiff"
)

func main() {
	aoc.Main(locdiff.Puzzle())
}
