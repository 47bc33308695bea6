// Package day10 solves "Hoof It".
package day10

import (
	"aoc2024/internal/coord"
	"aoc2024/internal/direction"
	"aoc2024/internal/grid"
	"aoc2024/internal/puzzle"
)

func init() {
	puzzle.Register(10, "Hoof It", Solve)
}

// Solve sums trailhead scores (distinct summits reached) and ratings
// (distinct trails).
func Solve(in string) (puzzle.Answers, error) {
	g := grid.Parse(in)

	var score, rating int
	for _, head := range g.FindCells('0') {
		summits := climb(g, '0', head, nil)
		rating += len(summits)

		distinct := make(map[coord.Coord]struct{}, len(summits))
		for _, s := range summits {
			distinct[s] = struct{}{}
		}
		score += len(distinct)
	}
	return puzzle.Answers{Part1: score, Part2: rating}, nil
}

// climb appends the summit reached by every trail starting at c.
func climb(g *grid.Grid, height rune, c coord.Coord, out []coord.Coord) []coord.Coord {
	if height == '9' {
		return append(out, c)
	}
	next := height + 1
	for _, d := range direction.Compass4.Values() {
		n := d.Step(c)
		if g.GetOr(n, '.') == next {
			out = climb(g, next, n, out)
		}
	}
	return out
}
