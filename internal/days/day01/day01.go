// Package day01 solves "Historian Hysteria".
package day01

import (
	"fmt"
	"slices"

	"aoc2024/internal/coord"
	"aoc2024/internal/input"
	"aoc2024/internal/puzzle"
)

func init() {
	puzzle.Register(1, "Historian Hysteria", Solve)
}

// Solve pairs the two sorted location lists.
func Solve(in string) (puzzle.Answers, error) {
	left, right, err := parse(in)
	if err != nil {
		return puzzle.Answers{}, err
	}
	return puzzle.Answers{Part1: distance(left, right), Part2: similarity(left, right)}, nil
}

func parse(in string) (left, right []int, err error) {
	for i, line := range input.Lines(in) {
		nums, err := input.Fields(line)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if len(nums) != 2 {
			return nil, nil, fmt.Errorf("line %d: expected 2 columns, got %d", i+1, len(nums))
		}
		left = append(left, nums[0])
		right = append(right, nums[1])
	}
	slices.Sort(left)
	slices.Sort(right)
	return left, right, nil
}

func distance(left, right []int) int {
	total := 0
	for i := range left {
		total += coord.AbsDiff(left[i], right[i])
	}
	return total
}

func similarity(left, right []int) int {
	scores := make(map[int]int, len(right))
	for _, n := range right {
		scores[n] += n
	}
	total := 0
	for _, n := range left {
		total += scores[n]
	}
	return total
}
