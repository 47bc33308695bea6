// Package day13 solves "Claw Contraption".
package day13

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"aoc2024/internal/coord"
	"aoc2024/internal/puzzle"
)

func init() {
	puzzle.Register(13, "Claw Contraption", Solve)
}

const (
	maxPresses   = 100
	prizeOffset  = 10000000000000
	costA, costB = 3, 1
)

var machineRe = regexp.MustCompile(`Button A: X\+(\d+), Y\+(\d+)\s+Button B: X\+(\d+), Y\+(\d+)\s+Prize: X=(\d+), Y=(\d+)`)

// ErrCollinear is returned when both buttons move along the same line.
var ErrCollinear = errors.New("buttons are collinear")

type machine struct {
	a, b, prize coord.Coord
}

// Solve sums the fewest tokens needed to win every winnable prize, then
// again with the prizes moved by 10^13 on both axes.
func Solve(in string) (puzzle.Answers, error) {
	machines, err := parse(in)
	if err != nil {
		return puzzle.Answers{}, err
	}

	var near, far int
	for _, m := range machines {
		if cost, ok := m.searchCost(); ok {
			near += cost
		}
		shifted := m
		shifted.prize = m.prize.Add(coord.C(prizeOffset, prizeOffset))
		cost, ok, err := shifted.solveCost()
		if err != nil {
			return puzzle.Answers{}, err
		}
		if ok {
			far += cost
		}
	}
	return puzzle.Answers{Part1: near, Part2: far}, nil
}

// searchCost tries every combination of at most 100 presses per button.
func (m machine) searchCost() (int, bool) {
	best, found := 0, false
	for b := 0; b <= maxPresses; b++ {
		for a := 0; a <= maxPresses; a++ {
			if m.a.Mul(a).Add(m.b.Mul(b)) != m.prize {
				continue
			}
			if cost := costA*a + costB*b; !found || cost < best {
				best, found = cost, true
			}
		}
	}
	return best, found
}

// solveCost solves the two linear equations with Cramer's rule. Only
// non-negative integer solutions win.
func (m machine) solveCost() (int, bool, error) {
	det := m.a.X*m.b.Y - m.a.Y*m.b.X
	if det == 0 {
		return 0, false, ErrCollinear
	}
	an := m.prize.X*m.b.Y - m.prize.Y*m.b.X
	bn := m.a.X*m.prize.Y - m.a.Y*m.prize.X
	if an%det != 0 || bn%det != 0 {
		return 0, false, nil
	}
	a, b := an/det, bn/det
	if a < 0 || b < 0 {
		return 0, false, nil
	}
	return costA*a + costB*b, true, nil
}

func parse(in string) ([]machine, error) {
	matches := machineRe.FindAllStringSubmatch(in, -1)
	if len(matches) == 0 {
		return nil, errors.New("no claw machines found")
	}
	out := make([]machine, 0, len(matches))
	for _, m := range matches {
		n := make([]int, 6)
		for i := range n {
			v, err := strconv.Atoi(m[i+1])
			if err != nil {
				return nil, fmt.Errorf("invalid claw machine number: %w", err)
			}
			n[i] = v
		}
		out = append(out, machine{
			a:     coord.C(n[0], n[1]),
			b:     coord.C(n[2], n[3]),
			prize: coord.C(n[4], n[5]),
		})
	}
	return out, nil
}
