// Package day24 solves "Crossed Wires".
package day24

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"aoc2024/internal/input"
	"aoc2024/internal/puzzle"
)

func init() {
	puzzle.Register(24, "Crossed Wires", Solve)
}

const (
	and = "AND"
	or  = "OR"
	xor = "XOR"
)

// ErrCycle is returned when a wire depends on itself.
var ErrCycle = errors.New("circuit has a cycle")

type gate struct {
	in1, op, in2, out string
}

type circuit struct {
	inputs map[string]int
	gates  map[string]gate
}

// Solve returns the number on the z wires and the sorted names of the gate
// outputs that were swapped in the adder. The graphviz rendering of the
// circuit is returned as debug output.
func Solve(in string) (puzzle.Answers, error) {
	c, err := parse(in)
	if err != nil {
		return puzzle.Answers{}, err
	}
	z, err := c.output()
	if err != nil {
		return puzzle.Answers{}, err
	}
	return puzzle.Answers{
		Part1: z,
		Part2: strings.Join(c.swapped(), ","),
		Debug: c.dot(),
	}, nil
}

func (c circuit) zWires() []string {
	var zs []string
	for out := range c.gates {
		if strings.HasPrefix(out, "z") {
			zs = append(zs, out)
		}
	}
	slices.Sort(zs)
	return zs
}

// output reads the z wires as a binary number, z00 being the lowest bit.
func (c circuit) output() (int, error) {
	values := make(map[string]int, len(c.inputs)+len(c.gates))
	for k, v := range c.inputs {
		values[k] = v
	}
	zs := c.zWires()
	n := 0
	for i := len(zs) - 1; i >= 0; i-- {
		bit, err := c.eval(zs[i], values, map[string]bool{})
		if err != nil {
			return 0, err
		}
		n = n<<1 | bit
	}
	return n, nil
}

func (c circuit) eval(wire string, values map[string]int, visiting map[string]bool) (int, error) {
	if v, ok := values[wire]; ok {
		return v, nil
	}
	g, ok := c.gates[wire]
	if !ok {
		return 0, fmt.Errorf("wire %s has no driver", wire)
	}
	if visiting[wire] {
		return 0, fmt.Errorf("%w at %s", ErrCycle, wire)
	}
	visiting[wire] = true
	defer delete(visiting, wire)

	a, err := c.eval(g.in1, values, visiting)
	if err != nil {
		return 0, err
	}
	b, err := c.eval(g.in2, values, visiting)
	if err != nil {
		return 0, err
	}
	var v int
	switch g.op {
	case and:
		v = a & b
	case or:
		v = a | b
	case xor:
		v = a ^ b
	}
	values[wire] = v
	return v, nil
}

func isInput(wire string) bool {
	return strings.HasPrefix(wire, "x") || strings.HasPrefix(wire, "y")
}

// swapped checks every gate against the shape of a ripple-carry adder and
// returns the outputs that break it:
//   - a z wire other than the final carry must come from XOR;
//   - an XOR of two internal wires must drive a z wire;
//   - an AND, other than bit 0's, must feed an OR;
//   - an XOR must never feed an OR.
func (c circuit) swapped() []string {
	zs := c.zWires()
	if len(zs) == 0 {
		return nil
	}
	last := zs[len(zs)-1]

	feeds := make(map[string][]string)
	for _, g := range c.gates {
		feeds[g.in1] = append(feeds[g.in1], g.op)
		feeds[g.in2] = append(feeds[g.in2], g.op)
	}

	wrong := make(map[string]bool)
	for _, g := range c.gates {
		switch {
		case strings.HasPrefix(g.out, "z") && g.op != xor && g.out != last:
			wrong[g.out] = true
		case g.op == xor && !strings.HasPrefix(g.out, "z") && !isInput(g.in1) && !isInput(g.in2):
			wrong[g.out] = true
		}
		firstBit := g.in1 == "x00" || g.in2 == "x00"
		if g.op == and && !firstBit {
			for _, op := range feeds[g.out] {
				if op != or {
					wrong[g.out] = true
				}
			}
		}
		if g.op == xor {
			for _, op := range feeds[g.out] {
				if op == or {
					wrong[g.out] = true
				}
			}
		}
	}

	out := make([]string, 0, len(wrong))
	for w := range wrong {
		out = append(out, w)
	}
	slices.Sort(out)
	return out
}

// dot renders the circuit for graphviz.
func (c circuit) dot() string {
	outs := make([]string, 0, len(c.gates))
	for out := range c.gates {
		outs = append(outs, out)
	}
	slices.Sort(outs)

	var sb strings.Builder
	sb.WriteString("digraph G {\n")
	for _, out := range outs {
		g := c.gates[out]
		fmt.Fprintf(&sb, "\t%s -> %s;\n\t%s -> %s;\n", g.in1, out, g.in2, out)
		fmt.Fprintf(&sb, "\t%s [label=\"%s\\n%s\"];\n", out, g.op, out)
	}
	sb.WriteString("}\n")
	return sb.String()
}

func parse(in string) (circuit, error) {
	c := circuit{inputs: make(map[string]int), gates: make(map[string]gate)}
	blocks := input.Blocks(in)
	if len(blocks) != 2 {
		return c, fmt.Errorf("expected wires and gates, got %d sections", len(blocks))
	}
	for _, line := range input.Lines(blocks[0]) {
		name, value, ok := strings.Cut(line, ": ")
		if !ok {
			return c, fmt.Errorf("invalid wire %q", line)
		}
		v, err := strconv.Atoi(value)
		if err != nil || (v != 0 && v != 1) {
			return c, fmt.Errorf("invalid wire value %q", line)
		}
		c.inputs[name] = v
	}
	for _, line := range input.Lines(blocks[1]) {
		f := strings.Fields(line)
		if len(f) != 5 || f[3] != "->" {
			return c, fmt.Errorf("invalid gate %q", line)
		}
		switch f[1] {
		case and, or, xor:
		default:
			return c, fmt.Errorf("unknown operator %q", f[1])
		}
		c.gates[f[4]] = gate{in1: f[0], op: f[1], in2: f[2], out: f[4]}
	}
	return c, nil
}
