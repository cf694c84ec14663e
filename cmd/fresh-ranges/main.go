// The fresh-ranges command counts the available ingredients that are fresh.
package main

import (
	"github.com/99xtal/aoc"
	"github.com/99xtal/aoc/fresh"
)

func main() {
	aoc.Main(fresh.Puzzle())
}
