// The prodval command sums the invalid product IDs in a set of ranges.
package main

import (
	"github.com/99xtal/aoc"
	"github.com/99xtal/aoc/prodval"
)

func main() {
	aoc.Main(prodval.Puzzle())
}
