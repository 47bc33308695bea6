// Package day12 solves "Garden Groups".
package day12

import (
	"aoc2024/internal/coord"
	"aoc2024/internal/direction"
	"aoc2024/internal/grid"
	"aoc2024/internal/puzzle"
)

func init() {
	puzzle.Register(12, "Garden Groups", Solve)
}

// edge is the side of a plot facing dir.
type edge struct {
	at  coord.Coord
	dir direction.Direction
}

// Solve prices every region by perimeter, then by number of sides.
func Solve(in string) (puzzle.Answers, error) {
	g := grid.Parse(in)

	var byPerimeter, bySides int
	seen := make(map[coord.Coord]bool, g.Len())
	for _, c := range g.Coords() {
		if seen[c] {
			continue
		}
		r, _ := g.Get(c)
		area := region(g, r, c)
		for _, a := range area {
			seen[a] = true
		}
		edges := perimeter(g, r, area)
		byPerimeter += len(area) * len(edges)
		bySides += len(area) * sides(edges)
	}
	return puzzle.Answers{Part1: byPerimeter, Part2: bySides}, nil
}

// region flood-fills the plots connected to start that hold r.
func region(g *grid.Grid, r rune, start coord.Coord) []coord.Coord {
	in := map[coord.Coord]bool{start: true}
	queue := []coord.Coord{start}
	for i := 0; i < len(queue); i++ {
		for _, d := range direction.Compass4.Values() {
			n := d.Step(queue[i])
			if in[n] || g.GetOr(n, 0) != r {
				continue
			}
			in[n] = true
			queue = append(queue, n)
		}
	}
	return queue
}

func perimeter(g *grid.Grid, r rune, area []coord.Coord) map[edge]bool {
	edges := make(map[edge]bool)
	for _, c := range area {
		for _, d := range direction.Compass4.Values() {
			if g.GetOr(d.Step(c), 0) != r {
				edges[edge{c, d}] = true
			}
		}
	}
	return edges
}

// sides counts straight runs of edges. A run is counted at the edge with no
// neighbour on its left.
func sides(edges map[edge]bool) int {
	n := 0
	for e := range edges {
		if !edges[edge{e.dir.Left().Step(e.at), e.dir}] {
			n++
		}
	}
	return n
}
