// Package day08 solves "Resonant Collinearity".
package day08

import (
	"aoc2024/internal/coord"
	"aoc2024/internal/grid"
	"aoc2024/internal/puzzle"
)

func init() {
	puzzle.Register(8, "Resonant Collinearity", Solve)
}

// Solve counts antinode locations, first at twice the antenna spacing, then
// along the whole line through each antenna pair.
func Solve(in string) (puzzle.Answers, error) {
	g := grid.Parse(in)
	return puzzle.Answers{
		Part1: countAntinodes(g, pairAntinodes),
		Part2: countAntinodes(g, lineAntinodes),
	}, nil
}

type antinodeFunc func(a, b coord.Coord, g *grid.Grid) []coord.Coord

func countAntinodes(g *grid.Grid, fn antinodeFunc) int {
	found := make(map[coord.Coord]struct{})
	for _, antennas := range g.IndexRepeatingCells("", ".") {
		for i, a := range antennas {
			for j, b := range antennas {
				if i == j {
					continue
				}
				for _, c := range fn(a, b, g) {
					if g.Contains(c) {
						found[c] = struct{}{}
					}
				}
			}
		}
	}
	return len(found)
}

func pairAntinodes(a, b coord.Coord, _ *grid.Grid) []coord.Coord {
	d := b.Sub(a)
	return []coord.Coord{a.Sub(d), b.Add(d)}
}

func lineAntinodes(a, b coord.Coord, g *grid.Grid) []coord.Coord {
	d := b.Sub(a)
	var out []coord.Coord
	for c := b; g.Contains(c); c = c.Add(d) {
		out = append(out, c)
	}
	return out
}
