// Package day25 solves "Code Chronicle".
package day25

import (
	"fmt"

	"aoc2024/internal/coord"
	"aoc2024/internal/grid"
	"aoc2024/internal/input"
	"aoc2024/internal/puzzle"
)

func init() {
	puzzle.Register(25, "Code Chronicle", Solve)
}

const pin = '#'

// schematic is the pin height of every column.
type schematic []int

// Solve counts the lock and key pairs that fit without overlapping. There is
// no second part.
func Solve(in string) (puzzle.Answers, error) {
	var locks, keys []schematic
	space := -1
	for i, block := range input.Blocks(in) {
		g := grid.Parse(block)
		if space < 0 {
			space = g.Height() - 2
		} else if g.Height()-2 != space {
			return puzzle.Answers{}, fmt.Errorf("schematic %d: height %d differs", i+1, g.Height())
		}
		heights, lock := read(g)
		if lock {
			locks = append(locks, heights)
		} else {
			keys = append(keys, heights)
		}
	}

	fits := 0
	for _, l := range locks {
		for _, k := range keys {
			if l.fits(k, space) {
				fits++
			}
		}
	}
	return puzzle.Answers{Part1: fits}, nil
}

// read measures each column. A lock has its top row filled, a key its bottom
// row.
func read(g *grid.Grid) (schematic, bool) {
	lock := true
	for x := range g.Width() {
		if g.GetOr(coord.C(x, 0), 0) != pin {
			lock = false
		}
	}
	heights := make(schematic, g.Width())
	for x := range heights {
		for y := range g.Height() {
			if g.GetOr(coord.C(x, y), 0) == pin {
				heights[x]++
			}
		}
		heights[x]--
	}
	return heights, lock
}

func (s schematic) fits(key schematic, space int) bool {
	for i := range s {
		if s[i]+key[i] > space {
			return false
		}
	}
	return true
}
