// Package day15 solves "Warehouse Woes".
package day15

import (
	"errors"
	"fmt"
	"strings"

	"aoc2024/internal/coord"
	"aoc2024/internal/direction"
	"aoc2024/internal/grid"
	"aoc2024/internal/input"
	"aoc2024/internal/puzzle"
)

func init() {
	puzzle.Register(15, "Warehouse Woes", Solve)
}

const (
	robot    = '@'
	wall     = '#'
	empty    = '.'
	box      = 'O'
	boxLeft  = '['
	boxRight = ']'
)

// Solve runs the robot's moves in the warehouse and in its double-width
// version and returns the GPS sum of the boxes afterwards.
func Solve(in string) (puzzle.Answers, error) {
	blocks := input.Blocks(in)
	if len(blocks) != 2 {
		return puzzle.Answers{}, fmt.Errorf("expected map and moves, got %d sections", len(blocks))
	}
	moves, err := parseMoves(blocks[1])
	if err != nil {
		return puzzle.Answers{}, err
	}

	narrow := grid.Parse(blocks[0])
	wide := widen(narrow)

	if err := run(narrow, moves); err != nil {
		return puzzle.Answers{}, err
	}
	if err := run(wide, moves); err != nil {
		return puzzle.Answers{}, err
	}
	return puzzle.Answers{Part1: gps(narrow), Part2: gps(wide)}, nil
}

func parseMoves(block string) ([]direction.Direction, error) {
	var moves []direction.Direction
	for _, r := range strings.ReplaceAll(block, "\n", "") {
		if r == '\r' {
			continue
		}
		d, err := direction.FromArrow(r)
		if err != nil {
			return nil, err
		}
		moves = append(moves, d)
	}
	return moves, nil
}

// widen doubles every tile horizontally.
func widen(g *grid.Grid) *grid.Grid {
	out := grid.New()
	for _, c := range g.Coords() {
		r, _ := g.Get(c)
		left, right := r, r
		switch r {
		case box:
			left, right = boxLeft, boxRight
		case robot:
			right = empty
		}
		out.Set(coord.C(c.X*2, c.Y), left)
		out.Set(coord.C(c.X*2+1, c.Y), right)
	}
	return out
}

func run(g *grid.Grid, moves []direction.Direction) error {
	at, ok := g.FindCell(robot)
	if !ok {
		return errors.New("no robot in the warehouse")
	}
	for _, d := range moves {
		if canPush(g, at, d) {
			push(g, at, d)
			at = d.Step(at)
		}
	}
	return nil
}

func vertical(d direction.Direction) bool {
	return d.Delta().X == 0
}

// partner returns the other half of the wide box at c.
func partner(c coord.Coord, r rune) coord.Coord {
	if r == boxLeft {
		return direction.East.Step(c)
	}
	return direction.West.Step(c)
}

// canPush reports whether whatever occupies c can move one step in d.
func canPush(g *grid.Grid, c coord.Coord, d direction.Direction) bool {
	switch r := g.GetOr(c, wall); r {
	case wall:
		return false
	case empty:
		return true
	case boxLeft, boxRight:
		if vertical(d) {
			return canPush(g, d.Step(c), d) && canPush(g, d.Step(partner(c, r)), d)
		}
	}
	return canPush(g, d.Step(c), d)
}

// push moves whatever occupies c one step in d. canPush must hold.
func push(g *grid.Grid, c coord.Coord, d direction.Direction) {
	r := g.GetOr(c, wall)
	if r == empty {
		return
	}
	if (r == boxLeft || r == boxRight) && vertical(d) {
		other := partner(c, r)
		o, _ := g.Get(other)
		push(g, d.Step(c), d)
		push(g, d.Step(other), d)
		g.Set(d.Step(c), r)
		g.Set(d.Step(other), o)
		g.Set(c, empty)
		g.Set(other, empty)
		return
	}
	push(g, d.Step(c), d)
	g.Set(d.Step(c), r)
	g.Set(c, empty)
}

func gps(g *grid.Grid) int {
	sum := 0
	for _, r := range []rune{box, boxLeft} {
		for _, c := range g.FindCells(r) {
			sum += 100*c.Y + c.X
		}
	}
	return sum
}
