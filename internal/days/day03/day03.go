// Package day03 solves "Mull It Over".
package day03

import (
	"regexp"
	"strconv"

	"aoc2024/internal/puzzle"
)

func init() {
	puzzle.Register(3, "Mull It Over", Solve)
}

var instr = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)|do\(\)|don't\(\)`)

// Solve sums the uncorrupted multiplications, then only the enabled ones.
func Solve(in string) (puzzle.Answers, error) {
	return puzzle.Answers{Part1: scan(in, false), Part2: scan(in, true)}, nil
}

func scan(in string, conditional bool) int {
	total := 0
	enabled := true
	for _, m := range instr.FindAllStringSubmatch(in, -1) {
		switch m[0] {
		case "do()":
			enabled = true
		case "don't()":
			enabled = false
		default:
			if conditional && !enabled {
				continue
			}
			a, _ := strconv.Atoi(m[1])
			b, _ := strconv.Atoi(m[2])
			total += a * b
		}
	}
	return total
}
