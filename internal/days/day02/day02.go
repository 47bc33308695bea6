// Package day02 solves "Red-Nosed Reports".
package day02

import (
	"fmt"

	"aoc2024/internal/input"
	"aoc2024/internal/puzzle"
)

func init() {
	puzzle.Register(2, "Red-Nosed Reports", Solve)
}

// Solve counts the safe reports, strictly and with the problem dampener.
func Solve(in string) (puzzle.Answers, error) {
	var strict, dampened int
	for i, line := range input.Lines(in) {
		levels, err := input.Fields(line)
		if err != nil {
			return puzzle.Answers{}, fmt.Errorf("report %d: %w", i+1, err)
		}
		if safe(levels) {
			strict++
			dampened++
		} else if safeWithout(levels) {
			dampened++
		}
	}
	return puzzle.Answers{Part1: strict, Part2: dampened}, nil
}

// safe reports whether levels move in one direction by steps of 1 to 3.
func safe(levels []int) bool {
	if len(levels) < 2 {
		return true
	}
	sign := 1
	if levels[1] < levels[0] {
		sign = -1
	}
	for i := 1; i < len(levels); i++ {
		step := (levels[i] - levels[i-1]) * sign
		if step < 1 || step > 3 {
			return false
		}
	}
	return true
}

func safeWithout(levels []int) bool {
	buf := make([]int, 0, len(levels))
	for skip := range levels {
		buf = buf[:0]
		buf = append(buf, levels[:skip]...)
		buf = append(buf, levels[skip+1:]...)
		if safe(buf) {
			return true
		}
	}
	return false
}
