// Package day07 solves "Bridge Repair".
package day07

import (
	"fmt"
	"strconv"
	"strings"

	"aoc2024/internal/input"
	"aoc2024/internal/puzzle"
)

func init() {
	puzzle.Register(7, "Bridge Repair", Solve)
}

type equation struct {
	target int
	values []int
}

type operator func(a, b int) int

func add(a, b int) int { return a + b }
func mul(a, b int) int { return a * b }

func concat(a, b int) int {
	for p := b; p > 0; p /= 10 {
		a *= 10
	}
	if b == 0 {
		a *= 10
	}
	return a + b
}

// Solve sums the calibration targets reachable with + and *, then with ||
// added.
func Solve(in string) (puzzle.Answers, error) {
	eqs, err := parse(in)
	if err != nil {
		return puzzle.Answers{}, err
	}
	return puzzle.Answers{
		Part1: calibrate(eqs, add, mul),
		Part2: calibrate(eqs, add, mul, concat),
	}, nil
}

func calibrate(eqs []equation, ops ...operator) int {
	total := 0
	for _, eq := range eqs {
		if solvable(eq.target, eq.values[0], eq.values[1:], ops) {
			total += eq.target
		}
	}
	return total
}

// solvable evaluates left to right. Every operator only grows the
// accumulator, so branches that overshoot are cut.
func solvable(target, acc int, rest []int, ops []operator) bool {
	if len(rest) == 0 {
		return acc == target
	}
	if acc > target {
		return false
	}
	for _, op := range ops {
		if solvable(target, op(acc, rest[0]), rest[1:], ops) {
			return true
		}
	}
	return false
}

func parse(in string) ([]equation, error) {
	var eqs []equation
	for i, line := range input.Lines(in) {
		head, tail, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("line %d: missing ':'", i+1)
		}
		target, err := strconv.Atoi(strings.TrimSpace(head))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		values, err := input.Fields(tail)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if len(values) == 0 {
			return nil, fmt.Errorf("line %d: no values", i+1)
		}
		eqs = append(eqs, equation{target: target, values: values})
	}
	return eqs, nil
}
