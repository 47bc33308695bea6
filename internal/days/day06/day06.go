// Package day06 solves "Guard Gallivant".
package day06

import (
	"errors"

	"aoc2024/internal/coord"
	"aoc2024/internal/direction"
	"aoc2024/internal/grid"
	"aoc2024/internal/puzzle"
)

func init() {
	puzzle.Register(6, "Guard Gallivant", Solve)
}

const (
	guard    = '^'
	obstacle = '#'
)

// Solve counts the cells the guard visits, then the single obstacle
// placements that trap the guard in a loop.
func Solve(in string) (puzzle.Answers, error) {
	g := grid.Parse(in)
	start, ok := g.FindCell(guard)
	if !ok {
		return puzzle.Answers{}, errors.New("no guard on the map")
	}

	visited, _ := walk(g, start)

	loops := 0
	for c := range visited {
		if c == start {
			continue
		}
		candidate := g.Clone()
		candidate.Set(c, obstacle)
		if _, looped := walk(candidate, start); looped {
			loops++
		}
	}
	return puzzle.Answers{Part1: len(visited), Part2: loops}, nil
}

type state struct {
	at  coord.Coord
	dir direction.Direction
}

// walk follows the guard north from start, turning right at obstacles, until
// the guard leaves the map or repeats a state.
func walk(g *grid.Grid, start coord.Coord) (map[coord.Coord]struct{}, bool) {
	visited := make(map[coord.Coord]struct{})
	seen := make(map[state]struct{})

	at, dir := start, direction.North
	for {
		visited[at] = struct{}{}
		s := state{at, dir}
		if _, ok := seen[s]; ok {
			return visited, true
		}
		seen[s] = struct{}{}

		next := dir.Step(at)
		r, ok := g.Get(next)
		switch {
		case !ok:
			return visited, false
		case r == obstacle:
			dir = dir.Right()
		default:
			at = next
		}
	}
}
