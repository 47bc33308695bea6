// Package day11 solves "Plutonian Pebbles".
package day11

import (
	"strconv"

	"aoc2024/internal/input"
	"aoc2024/internal/puzzle"
)

func init() {
	puzzle.Register(11, "Plutonian Pebbles", Solve)
}

// Solve counts the stones after 25 and after 75 blinks.
func Solve(in string) (puzzle.Answers, error) {
	stones, err := input.Fields(in)
	if err != nil {
		return puzzle.Answers{}, err
	}
	c := newCounter()
	return puzzle.Answers{Part1: c.total(stones, 25), Part2: c.total(stones, 75)}, nil
}

type key struct {
	stone, blinks int
}

// counter memoizes how many stones one stone becomes after some blinks.
type counter struct {
	memo map[key]int
}

func newCounter() *counter {
	return &counter{memo: make(map[key]int)}
}

func (c *counter) total(stones []int, blinks int) int {
	n := 0
	for _, s := range stones {
		n += c.count(s, blinks)
	}
	return n
}

func (c *counter) count(stone, blinks int) int {
	if blinks == 0 {
		return 1
	}
	k := key{stone, blinks}
	if n, ok := c.memo[k]; ok {
		return n
	}
	n := c.total(blink(stone), blinks-1)
	c.memo[k] = n
	return n
}

func blink(stone int) []int {
	if stone == 0 {
		return []int{1}
	}
	digits := strconv.Itoa(stone)
	if len(digits)%2 == 0 {
		half := len(digits) / 2
		l, _ := strconv.Atoi(digits[:half])
		r, _ := strconv.Atoi(digits[half:])
		return []int{l, r}
	}
	return []int{stone * 2024}
}
