// Package day04 solves "Ceres Search".
package day04

import (
	"aoc2024/internal/coord"
	"aoc2024/internal/direction"
	"aoc2024/internal/grid"
	"aoc2024/internal/puzzle"
)

func init() {
	puzzle.Register(4, "Ceres Search", Solve)
}

// Solve counts XMAS in every direction, then MAS crosses.
func Solve(in string) (puzzle.Answers, error) {
	g := grid.Parse(in)
	return puzzle.Answers{Part1: countWord(g, "XMAS"), Part2: countCrosses(g)}, nil
}

func countWord(g *grid.Grid, word string) int {
	n := 0
	for _, start := range g.FindCells(rune(word[0])) {
		for _, d := range direction.Compass8.Values() {
			if wordAt(g, word, start, d) {
				n++
			}
		}
	}
	return n
}

func wordAt(g *grid.Grid, word string, start coord.Coord, d direction.Direction) bool {
	for i, r := range word {
		if g.GetOr(d.Forward(start, i), ' ') != r {
			return false
		}
	}
	return true
}

// countCrosses counts each A whose two diagonals both read MAS or SAM.
func countCrosses(g *grid.Grid) int {
	diagonals := []direction.Direction{
		direction.Compass8.MustParse("NE"),
		direction.Compass8.MustParse("NW"),
	}
	n := 0
	for _, a := range g.FindCells('A') {
		ok := true
		for _, d := range diagonals {
			c0 := g.GetOr(d.Step(a), ' ')
			c1 := g.GetOr(d.Reverse().Step(a), ' ')
			if !(c0 == 'M' && c1 == 'S') && !(c0 == 'S' && c1 == 'M') {
				ok = false
				break
			}
		}
		if ok {
			n++
		}
	}
	return n
}
