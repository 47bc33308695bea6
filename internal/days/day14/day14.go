// Package day14 solves "Restroom Redoubt".
package day14

import (
	"fmt"
	"regexp"
	"strconv"

	"aoc2024/internal/coord"
	"aoc2024/internal/grid"
	"aoc2024/internal/input"
	"aoc2024/internal/puzzle"
)

func init() {
	puzzle.Register(14, "Restroom Redoubt", Solve)
	puzzle.RegisterSample(14, SolveSample)
}

const (
	width  = 101
	height = 103
	ticks  = 100

	// The example robots patrol a smaller area.
	sampleWidth  = 11
	sampleHeight = 7
)

var robotRe = regexp.MustCompile(`^p=(-?\d+),(-?\d+)\s+v=(-?\d+),(-?\d+)$`)

type robot struct {
	pos, vel coord.Coord
}

// board is the wrapping area the robots patrol.
type board struct {
	w, h int
}

// Solve returns the safety factor after 100 seconds and the first second at
// which the robots are least evenly spread over the quadrants, which is when
// they draw the picture. The picture itself is returned as debug output.
func Solve(in string) (puzzle.Answers, error) {
	return solve(board{width, height}, in)
}

// SolveSample solves the example on its 11x7 area.
func SolveSample(in string) (puzzle.Answers, error) {
	return solve(board{sampleWidth, sampleHeight}, in)
}

func solve(b board, in string) (puzzle.Answers, error) {
	robots, err := parse(in)
	if err != nil {
		return puzzle.Answers{}, err
	}
	tick := b.leastSafeTick(robots)
	return puzzle.Answers{
		Part1: b.safetyFactor(b.positions(robots, ticks)),
		Part2: tick,
		Debug: b.render(b.positions(robots, tick)),
	}, nil
}

func (b board) positions(robots []robot, t int) []coord.Coord {
	out := make([]coord.Coord, len(robots))
	for i, r := range robots {
		p := r.pos.Add(r.vel.Mul(t))
		out[i] = coord.C(mod(p.X, b.w), mod(p.Y, b.h))
	}
	return out
}

func mod(a, m int) int {
	return ((a % m) + m) % m
}

// safetyFactor multiplies the robot counts of the non-empty quadrants.
// Robots on the middle row or column count for nothing.
func (b board) safetyFactor(positions []coord.Coord) int {
	var quadrants [4]int
	midX, midY := b.w/2, b.h/2
	for _, p := range positions {
		if p.X == midX || p.Y == midY {
			continue
		}
		q := 0
		if p.X > midX {
			q++
		}
		if p.Y > midY {
			q += 2
		}
		quadrants[q]++
	}
	factor := 1
	for _, n := range quadrants {
		if n > 0 {
			factor *= n
		}
	}
	return factor
}

// leastSafeTick scans one full period of the board.
func (b board) leastSafeTick(robots []robot) int {
	best, bestScore := 0, -1
	for t := range b.w * b.h {
		score := b.safetyFactor(b.positions(robots, t))
		if bestScore < 0 || score < bestScore {
			best, bestScore = t, score
		}
	}
	return best
}

func (b board) render(positions []coord.Coord) string {
	g := grid.FromCoords(positions, '*')
	// Pin the corners so the picture keeps the board's size.
	g.Set(coord.C(0, 0), g.GetOr(coord.C(0, 0), ' '))
	g.Set(coord.C(b.w-1, b.h-1), g.GetOr(coord.C(b.w-1, b.h-1), ' '))
	return g.Render(' ')
}

func parse(in string) ([]robot, error) {
	var robots []robot
	for i, line := range input.Lines(in) {
		m := robotRe.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("line %d: invalid robot %q", i+1, line)
		}
		n := make([]int, 4)
		for j := range n {
			v, err := strconv.Atoi(m[j+1])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid number: %w", i+1, err)
			}
			n[j] = v
		}
		robots = append(robots, robot{pos: coord.C(n[0], n[1]), vel: coord.C(n[2], n[3])})
	}
	return robots, nil
}
