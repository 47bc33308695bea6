// Package day18 solves "RAM Run".
package day18

import (
	"fmt"
	"sort"

	"aoc2024/internal/coord"
	"aoc2024/internal/direction"
	"aoc2024/internal/grid"
	"aoc2024/internal/input"
	"aoc2024/internal/puzzle"
)

func init() {
	puzzle.Register(18, "RAM Run", Solve)
	puzzle.RegisterSample(18, SolveSample)
}

const (
	size   = 71
	fallen = 1024
	wall   = '#'

	sampleSize   = 7
	sampleFallen = 12
)

// memory is a square region with the exit in the far corner.
type memory struct {
	size int
}

// Solve returns the fewest steps to the exit after the first kilobyte has
// fallen and the first byte that cuts the exit off.
func Solve(in string) (puzzle.Answers, error) {
	bytes, err := parse(in)
	if err != nil {
		return puzzle.Answers{}, err
	}
	return solve(memory{size}, bytes, fallen)
}

// SolveSample solves the example on its 7x7 region after 12 bytes.
func SolveSample(in string) (puzzle.Answers, error) {
	bytes, err := parse(in)
	if err != nil {
		return puzzle.Answers{}, err
	}
	return solve(memory{sampleSize}, bytes, sampleFallen)
}

func solve(m memory, bytes []coord.Coord, n int) (puzzle.Answers, error) {
	if n > len(bytes) {
		return puzzle.Answers{}, fmt.Errorf("only %d bytes fall, need %d", len(bytes), n)
	}
	steps, ok := m.steps(bytes[:n])
	if !ok {
		return puzzle.Answers{}, fmt.Errorf("exit unreachable after %d bytes", n)
	}
	blocker, ok := m.firstBlocker(bytes)
	if !ok {
		return puzzle.Answers{}, fmt.Errorf("exit stays reachable after all %d bytes", len(bytes))
	}
	return puzzle.Answers{
		Part1: steps,
		Part2: fmt.Sprintf("%d,%d", blocker.X, blocker.Y),
	}, nil
}

// steps runs a breadth-first search from (0,0) to the far corner.
func (m memory) steps(corrupt []coord.Coord) (int, bool) {
	g := grid.FromCoords(corrupt, wall)
	start, exit := coord.C(0, 0), coord.C(m.size-1, m.size-1)
	if g.Contains(start) || g.Contains(exit) {
		return 0, false
	}
	dist := map[coord.Coord]int{start: 0}
	queue := []coord.Coord{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == exit {
			return dist[cur], true
		}
		for _, d := range direction.Compass4.Values() {
			n := d.Step(cur)
			if !m.inside(n) || g.Contains(n) {
				continue
			}
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = dist[cur] + 1
			queue = append(queue, n)
		}
	}
	return 0, false
}

func (m memory) inside(c coord.Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < m.size && c.Y < m.size
}

// firstBlocker binary searches for the shortest prefix of bytes that leaves
// no route.
func (m memory) firstBlocker(bytes []coord.Coord) (coord.Coord, bool) {
	k := sort.Search(len(bytes)+1, func(k int) bool {
		_, ok := m.steps(bytes[:k])
		return !ok
	})
	if k == 0 || k > len(bytes) {
		return coord.Coord{}, false
	}
	return bytes[k-1], true
}

func parse(in string) ([]coord.Coord, error) {
	var out []coord.Coord
	for i, line := range input.Lines(in) {
		xy, err := input.Split(line, ",")
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if len(xy) != 2 {
			return nil, fmt.Errorf("line %d: expected x,y", i+1)
		}
		out = append(out, coord.C(xy[0], xy[1]))
	}
	return out, nil
}
