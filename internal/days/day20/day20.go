// Package day20 solves "Race Condition".
package day20

import (
	"errors"

	"aoc2024/internal/coord"
	"aoc2024/internal/direction"
	"aoc2024/internal/grid"
	"aoc2024/internal/puzzle"
)

func init() {
	puzzle.Register(20, "Race Condition", Solve)
	puzzle.RegisterSample(20, SolveSample)
}

const (
	threshold = 100

	// The example track is short, so its savings are small.
	sampleShortThreshold = 2
	sampleLongThreshold  = 50

	shortCut = 2
	longCut  = 20
	wall     = '#'
)

// Solve counts the cheats saving at least 100 picoseconds when walls may be
// passed for 2 and for 20 picoseconds.
func Solve(in string) (puzzle.Answers, error) {
	return solve(in, threshold, threshold)
}

// SolveSample counts the example's cheats saving at least 2 picoseconds with
// the short cut and at least 50 with the long one.
func SolveSample(in string) (puzzle.Answers, error) {
	return solve(in, sampleShortThreshold, sampleLongThreshold)
}

func solve(in string, shortMin, longMin int) (puzzle.Answers, error) {
	route, err := track(grid.Parse(in))
	if err != nil {
		return puzzle.Answers{}, err
	}
	return puzzle.Answers{
		Part1: cheats(route, shortCut, shortMin),
		Part2: cheats(route, longCut, longMin),
	}, nil
}

// track follows the single path from S to E.
func track(g *grid.Grid) ([]coord.Coord, error) {
	start, ok := g.FindCell('S')
	if !ok {
		return nil, errors.New("track has no start")
	}
	end, ok := g.FindCell('E')
	if !ok {
		return nil, errors.New("track has no end")
	}

	route := []coord.Coord{start}
	seen := map[coord.Coord]bool{start: true}
	for cur := start; cur != end; {
		moved := false
		for _, d := range direction.Compass4.Values() {
			n := d.Step(cur)
			if seen[n] || g.GetOr(n, wall) == wall {
				continue
			}
			seen[n] = true
			route = append(route, n)
			cur, moved = n, true
			break
		}
		if !moved {
			return nil, errors.New("track is broken")
		}
	}
	return route, nil
}

// cheats counts pairs of track positions no more than maxCut apart whose
// shortcut saves at least minSave.
func cheats(route []coord.Coord, maxCut, minSave int) int {
	n := 0
	for i, from := range route {
		for j := i + minSave; j < len(route); j++ {
			d := from.ManhattanDistance(route[j])
			if d <= maxCut && j-i-d >= minSave {
				n++
			}
		}
	}
	return n
}
