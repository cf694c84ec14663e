// The rolls-iterated command counts the paper rolls removed by repeatedly taking every reachable one.
package main

import (
	"github.com/99xtal/aoc"
	"github.com/99xtal/aoc/rolls"
)

func main() {
	aoc.Main(rolls.IteratedPuzzle())
}
