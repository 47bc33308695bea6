// Package day16 solves "Reindeer Maze".
package day16

import (
	"container/heap"
	"errors"

	"aoc2024/internal/coord"
	"aoc2024/internal/direction"
	"aoc2024/internal/grid"
	"aoc2024/internal/puzzle"
)

func init() {
	puzzle.Register(16, "Reindeer Maze", Solve)
}

const (
	stepCost = 1
	turnCost = 1000
	wall     = '#'
)

type state struct {
	at  coord.Coord
	dir direction.Direction
}

type move struct {
	to   state
	cost int
}

// Solve returns the lowest score from S (facing east) to E and the number of
// tiles that lie on at least one lowest-score path.
func Solve(in string) (puzzle.Answers, error) {
	g := grid.Parse(in)
	start, ok := g.FindCell('S')
	if !ok {
		return puzzle.Answers{}, errors.New("maze has no start")
	}
	end, ok := g.FindCell('E')
	if !ok {
		return puzzle.Answers{}, errors.New("maze has no end")
	}

	open := func(c coord.Coord) bool { return g.GetOr(c, wall) != wall }

	fromStart := shortest([]state{{start, direction.East}}, func(s state) []move {
		out := turns(s)
		if n := s.dir.Step(s.at); open(n) {
			out = append(out, move{state{n, s.dir}, stepCost})
		}
		return out
	})

	var ends []state
	best := -1
	for _, d := range direction.Compass4.Values() {
		s := state{end, d}
		ends = append(ends, s)
		if cost, ok := fromStart[s]; ok && (best < 0 || cost < best) {
			best = cost
		}
	}
	if best < 0 {
		return puzzle.Answers{}, errors.New("end is unreachable")
	}

	// Walking the reversed graph from every end state gives the cost still
	// to pay from any state.
	toEnd := shortest(ends, func(s state) []move {
		out := turns(s)
		if p := s.dir.Reverse().Step(s.at); open(p) {
			out = append(out, move{state{p, s.dir}, stepCost})
		}
		return out
	})

	tiles := make(map[coord.Coord]struct{})
	for s, cost := range fromStart {
		if rest, ok := toEnd[s]; ok && cost+rest == best {
			tiles[s.at] = struct{}{}
		}
	}
	return puzzle.Answers{Part1: best, Part2: len(tiles)}, nil
}

func turns(s state) []move {
	return []move{
		{state{s.at, s.dir.Left()}, turnCost},
		{state{s.at, s.dir.Right()}, turnCost},
	}
}

// shortest runs Dijkstra from the given sources and returns the cost of every
// reachable state.
func shortest(sources []state, next func(state) []move) map[state]int {
	dist := make(map[state]int)
	pq := &queue{}
	for _, s := range sources {
		dist[s] = 0
		heap.Push(pq, item{s, 0})
	}
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(item)
		if cur.cost > dist[cur.state] {
			continue
		}
		for _, m := range next(cur.state) {
			cost := cur.cost + m.cost
			if old, ok := dist[m.to]; ok && old <= cost {
				continue
			}
			dist[m.to] = cost
			heap.Push(pq, item{m.to, cost})
		}
	}
	return dist
}

type item struct {
	state
	cost int
}

type queue []item

func (q queue) Len() int           { return len(q) }
func (q queue) Less(i, j int) bool { return q[i].cost < q[j].cost }
func (q queue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *queue) Push(x any)        { *q = append(*q, x.(item)) }

func (q *queue) Pop() any {
	old := *q
	it := old[len(old)-1]
	*q = old[:len(old)-1]
	return it
}
