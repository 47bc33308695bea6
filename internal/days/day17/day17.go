// Package day17 solves "Chronospatial Computer".
package day17

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"aoc2024/internal/input"
	"aoc2024/internal/puzzle"
)

func init() {
	puzzle.Register(17, "Chronospatial Computer", Solve)
}

const (
	adv = iota
	bxl
	bst
	jnz
	bxc
	out
	bdv
	cdv
)

var (
	registerRe = regexp.MustCompile(`Register ([ABC]): (\d+)`)
	programRe  = regexp.MustCompile(`Program: ([\d,]+)`)

	// ErrNoQuine is returned when no value of register A makes the program
	// print itself.
	ErrNoQuine = errors.New("no register A value reproduces the program")
)

// cpu is the 3-bit computer.
type cpu struct {
	a, b, c int
}

// Solve returns the program's output and the lowest register A value that
// makes it output a copy of itself.
func Solve(in string) (puzzle.Answers, error) {
	m, program, err := parse(in)
	if err != nil {
		return puzzle.Answers{}, err
	}
	output, err := m.run(program)
	if err != nil {
		return puzzle.Answers{}, err
	}
	a, err := quine(m, program)
	if err != nil {
		return puzzle.Answers{}, err
	}
	return puzzle.Answers{Part1: join(output), Part2: a}, nil
}

func (m *cpu) combo(op int) (int, error) {
	switch op {
	case 0, 1, 2, 3:
		return op, nil
	case 4:
		return m.a, nil
	case 5:
		return m.b, nil
	case 6:
		return m.c, nil
	}
	return 0, fmt.Errorf("invalid combo operand %d", op)
}

func (m *cpu) run(program []int) ([]int, error) {
	var output []int
	for pc := 0; pc+1 < len(program); {
		op, arg := program[pc], program[pc+1]
		pc += 2
		switch op {
		case bxl:
			m.b ^= arg
			continue
		case jnz:
			if m.a != 0 {
				pc = arg
			}
			continue
		case bxc:
			m.b ^= m.c
			continue
		}

		v, err := m.combo(arg)
		if err != nil {
			return nil, err
		}
		switch op {
		case adv:
			m.a >>= v
		case bst:
			m.b = v % 8
		case out:
			output = append(output, v%8)
		case bdv:
			m.b = m.a >> v
		case cdv:
			m.c = m.a >> v
		default:
			return nil, fmt.Errorf("invalid opcode %d", op)
		}
	}
	return output, nil
}

// quine searches for register A one octal digit at a time. The programs
// consume three bits of A per output value, so the most significant digits
// decide the tail of the output. Digits are fixed from the last output
// backwards, keeping every prefix that reproduces the program's suffix.
func quine(m cpu, program []int) (int, error) {
	candidates := []int{0}
	for i := len(program) - 1; i >= 0; i-- {
		var next []int
		for _, prefix := range candidates {
			for digit := range 8 {
				a := prefix*8 + digit
				trial := cpu{a: a, b: m.b, c: m.c}
				got, err := trial.run(program)
				if err != nil {
					return 0, err
				}
				if slices.Equal(got, program[i:]) {
					next = append(next, a)
				}
			}
		}
		if len(next) == 0 {
			return 0, ErrNoQuine
		}
		candidates = next
	}
	return slices.Min(candidates), nil
}

func join(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func parse(in string) (cpu, []int, error) {
	var m cpu
	regs := registerRe.FindAllStringSubmatch(in, -1)
	if len(regs) != 3 {
		return m, nil, fmt.Errorf("expected 3 registers, found %d", len(regs))
	}
	for _, r := range regs {
		v, err := strconv.Atoi(r[2])
		if err != nil {
			return m, nil, fmt.Errorf("register %s: %w", r[1], err)
		}
		switch r[1] {
		case "A":
			m.a = v
		case "B":
			m.b = v
		case "C":
			m.c = v
		}
	}
	p := programRe.FindStringSubmatch(in)
	if p == nil {
		return m, nil, errors.New("no program found")
	}
	program, err := input.Split(p[1], ",")
	if err != nil {
		return m, nil, err
	}
	return m, program, nil
}
