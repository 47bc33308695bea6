// Package day05 solves "Print Queue".
package day05

import (
	"fmt"
	"slices"
	"strings"

	"aoc2024/internal/input"
	"aoc2024/internal/puzzle"
)

func init() {
	puzzle.Register(5, "Print Queue", Solve)
}

type rule struct{ before, after int }

// Solve sums the middle pages of correctly ordered updates, then of the
// updates after reordering them.
func Solve(in string) (puzzle.Answers, error) {
	rules, updates, err := parse(in)
	if err != nil {
		return puzzle.Answers{}, err
	}

	var ordered, fixed int
	for _, update := range updates {
		sorted := slices.Clone(update)
		slices.SortStableFunc(sorted, func(a, b int) int {
			switch {
			case rules[rule{a, b}]:
				return -1
			case rules[rule{b, a}]:
				return 1
			}
			return 0
		})
		mid := sorted[len(sorted)/2]
		if slices.Equal(sorted, update) {
			ordered += mid
		} else {
			fixed += mid
		}
	}
	return puzzle.Answers{Part1: ordered, Part2: fixed}, nil
}

func parse(in string) (map[rule]bool, [][]int, error) {
	blocks := input.Blocks(in)
	if len(blocks) != 2 {
		return nil, nil, fmt.Errorf("expected rules and updates, got %d sections", len(blocks))
	}

	rules := make(map[rule]bool)
	for _, line := range input.Lines(blocks[0]) {
		before, after, ok := strings.Cut(line, "|")
		if !ok {
			return nil, nil, fmt.Errorf("invalid rule %q", line)
		}
		pair, err := input.Ints([]string{before, after})
		if err != nil {
			return nil, nil, err
		}
		rules[rule{pair[0], pair[1]}] = true
	}

	var updates [][]int
	for _, line := range input.Lines(blocks[1]) {
		pages, err := input.Split(line, ",")
		if err != nil {
			return nil, nil, err
		}
		if len(pages) == 0 {
			continue
		}
		updates = append(updates, pages)
	}
	return rules, updates, nil
}
