// Package day21 solves "Keypad Conundrum".
package day21

import (
	"fmt"
	"strconv"
	"strings"

	"aoc2024/internal/coord"
	"aoc2024/internal/grid"
	"aoc2024/internal/input"
	"aoc2024/internal/puzzle"
)

func init() {
	puzzle.Register(21, "Keypad Conundrum", Solve)
}

const (
	gap      = '.'
	activate = 'A'
)

var (
	numericPad     = newKeypad("789\n456\n123\n.0A")
	directionalPad = newKeypad(".^A\n<v>")
)

// keypad locates each key and the hole robot arms must never cross.
type keypad struct {
	keys map[rune]coord.Coord
	gap  coord.Coord
}

func newKeypad(layout string) keypad {
	g := grid.Parse(layout)
	keys := g.IndexCells("", "")
	return keypad{keys: keys, gap: keys[gap]}
}

// moves counts how often the operator moves from one key to another. Only
// counts matter: every sequence starts and ends on A, so sequences can be
// expanded independently.
type moves map[[2]rune]int

func movesOf(keys string) moves {
	m := make(moves)
	prev := activate
	for _, k := range keys {
		m[[2]rune{prev, k}]++
		prev = k
	}
	return m
}

func (m moves) total() int {
	n := 0
	for _, c := range m {
		n += c
	}
	return n
}

// Solve sums complexity with 2 and then 25 directional keypads between the
// operator and the numeric keypad.
func Solve(in string) (puzzle.Answers, error) {
	codes := input.Lines(in)
	p1, err := complexity(codes, 2)
	if err != nil {
		return puzzle.Answers{}, err
	}
	p2, err := complexity(codes, 25)
	if err != nil {
		return puzzle.Answers{}, err
	}
	return puzzle.Answers{Part1: p1, Part2: p2}, nil
}

func complexity(codes []string, robots int) (int, error) {
	sum := 0
	for _, code := range codes {
		value, err := strconv.Atoi(strings.TrimSuffix(code, string(activate)))
		if err != nil {
			return 0, fmt.Errorf("invalid code %q: %w", code, err)
		}
		presses, err := presses(code, robots)
		if err != nil {
			return 0, err
		}
		sum += value * presses
	}
	return sum, nil
}

// presses returns the length of the shortest sequence typed by the operator.
func presses(code string, robots int) (int, error) {
	m, err := numericPad.expand(movesOf(code))
	if err != nil {
		return 0, err
	}
	for range robots {
		if m, err = directionalPad.expand(m); err != nil {
			return 0, err
		}
	}
	return m.total(), nil
}

// expand turns moves on this keypad into moves on the keypad controlling it.
func (k keypad) expand(m moves) (moves, error) {
	out := make(moves)
	for pair, count := range m {
		from, ok := k.keys[pair[0]]
		if !ok {
			return nil, fmt.Errorf("no key %q", pair[0])
		}
		to, ok := k.keys[pair[1]]
		if !ok {
			return nil, fmt.Errorf("no key %q", pair[1])
		}
		for p, c := range movesOf(k.path(from, to)) {
			out[p] += count * c
		}
	}
	return out, nil
}

// path returns the arrows, followed by A, that move an arm from one key to
// another without crossing the gap. Where both orders are safe the cheaper
// order for the next keypad is used: left arrows first, and right arrows last.
func (k keypad) path(from, to coord.Coord) string {
	var h, v string
	if dx := to.X - from.X; dx < 0 {
		h = strings.Repeat("<", -dx)
	} else {
		h = strings.Repeat(">", dx)
	}
	if dy := to.Y - from.Y; dy < 0 {
		v = strings.Repeat("^", -dy)
	} else {
		v = strings.Repeat("v", dy)
	}

	switch {
	case h == "" || v == "":
		return h + v + "A"
	case from.Y == k.gap.Y && to.X == k.gap.X:
		return v + h + "A"
	case from.X == k.gap.X && to.Y == k.gap.Y:
		return h + v + "A"
	case strings.HasPrefix(h, ">"):
		return v + h + "A"
	}
	return h + v + "A"
}
