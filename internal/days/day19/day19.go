// Package day19 solves "Linen Layout".
package day19

import (
	"fmt"
	"strings"

	"aoc2024/internal/input"
	"aoc2024/internal/puzzle"
)

func init() {
	puzzle.Register(19, "Linen Layout", Solve)
}

// Solve counts the designs that can be made from the towel patterns and the
// total number of ways to make them.
func Solve(in string) (puzzle.Answers, error) {
	blocks := input.Blocks(in)
	if len(blocks) != 2 {
		return puzzle.Answers{}, fmt.Errorf("expected patterns and designs, got %d sections", len(blocks))
	}
	patterns := strings.Split(strings.TrimSpace(blocks[0]), ", ")

	a := arranger{patterns: patterns, memo: make(map[string]int)}
	var possible, ways int
	for _, design := range input.Lines(blocks[1]) {
		if n := a.count(design); n > 0 {
			possible++
			ways += n
		}
	}
	return puzzle.Answers{Part1: possible, Part2: ways}, nil
}

type arranger struct {
	patterns []string
	memo     map[string]int
}

// count returns the number of pattern sequences that spell design.
func (a arranger) count(design string) int {
	if design == "" {
		return 1
	}
	if n, ok := a.memo[design]; ok {
		return n
	}
	n := 0
	for _, p := range a.patterns {
		if rest, ok := strings.CutPrefix(design, p); ok {
			n += a.count(rest)
		}
	}
	a.memo[design] = n
	return n
}
