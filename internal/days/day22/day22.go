// Package day22 solves "Monkey Market".
package day22

import (
	"fmt"

	"aoc2024/internal/input"
	"aoc2024/internal/puzzle"
)

func init() {
	puzzle.Register(22, "Monkey Market", Solve)
}

const (
	rounds = 2000
	prune  = 16777216
)

// Solve sums each buyer's 2000th secret number and finds the most bananas
// one four-change sequence can buy.
func Solve(in string) (puzzle.Answers, error) {
	var seeds []int
	for i, line := range input.Lines(in) {
		n, err := input.Fields(line)
		if err != nil || len(n) != 1 {
			return puzzle.Answers{}, fmt.Errorf("line %d: invalid secret %q", i+1, line)
		}
		seeds = append(seeds, n[0])
	}

	sum := 0
	for _, s := range seeds {
		sum += nth(s, rounds)
	}
	return puzzle.Answers{Part1: sum, Part2: bestSequence(seeds)}, nil
}

func next(n int) int {
	n = (n ^ (n * 64)) % prune
	n = (n ^ (n / 32)) % prune
	return (n ^ (n * 2048)) % prune
}

func nth(n, k int) int {
	for range k {
		n = next(n)
	}
	return n
}

// changes packs four price changes in -9..9 into one key.
type changes [4]int8

// bestSequence totals, over all buyers, the price at the first occurrence of
// every four-change sequence and returns the best total.
func bestSequence(seeds []int) int {
	totals := make(map[changes]int)
	for _, s := range seeds {
		seen := make(map[changes]bool)
		var window changes
		secret := s
		price := secret % 10
		for i := 1; i <= rounds; i++ {
			secret = next(secret)
			p := secret % 10
			copy(window[:], window[1:])
			window[3] = int8(p - price)
			price = p
			if i < 4 || seen[window] {
				continue
			}
			seen[window] = true
			totals[window] += p
		}
	}
	best := 0
	for _, v := range totals {
		best = max(best, v)
	}
	return best
}
