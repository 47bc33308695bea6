// Package day23 solves "LAN Party".
package day23

import (
	"fmt"
	"slices"
	"strings"

	"aoc2024/internal/input"
	"aoc2024/internal/puzzle"
)

func init() {
	puzzle.Register(23, "LAN Party", Solve)
}

type network map[string]map[string]bool

// Solve counts the triangles with a computer whose name starts with t and
// returns the password of the largest fully connected party.
func Solve(in string) (puzzle.Answers, error) {
	net, err := parse(in)
	if err != nil {
		return puzzle.Answers{}, err
	}
	return puzzle.Answers{Part1: net.triangles("t"), Part2: strings.Join(net.largestParty(), ",")}, nil
}

func parse(in string) (network, error) {
	net := make(network)
	for i, line := range input.Lines(in) {
		a, b, ok := strings.Cut(line, "-")
		if !ok || a == "" || b == "" {
			return nil, fmt.Errorf("line %d: invalid link %q", i+1, line)
		}
		net.link(a, b)
		net.link(b, a)
	}
	return net, nil
}

func (n network) link(a, b string) {
	if n[a] == nil {
		n[a] = make(map[string]bool)
	}
	n[a][b] = true
}

func (n network) computers() []string {
	out := make([]string, 0, len(n))
	for c := range n {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// triangles counts sets of three connected computers with at least one name
// starting with prefix.
func (n network) triangles(prefix string) int {
	names := n.computers()
	count := 0
	for i, a := range names {
		for j := i + 1; j < len(names); j++ {
			b := names[j]
			if !n[a][b] {
				continue
			}
			for _, c := range names[j+1:] {
				if !n[a][c] || !n[b][c] {
					continue
				}
				if strings.HasPrefix(a, prefix) || strings.HasPrefix(b, prefix) || strings.HasPrefix(c, prefix) {
					count++
				}
			}
		}
	}
	return count
}

// largestParty returns the maximum clique in sorted order.
func (n network) largestParty() []string {
	var best []string
	var grow func(party, candidates []string)
	grow = func(party, candidates []string) {
		if len(party)+len(candidates) <= len(best) {
			return
		}
		if len(candidates) == 0 {
			best = slices.Clone(party)
			return
		}
		for i, c := range candidates {
			var next []string
			for _, o := range candidates[i+1:] {
				if n[c][o] {
					next = append(next, o)
				}
			}
			grow(append(party, c), next)
		}
		if len(party) > len(best) {
			best = slices.Clone(party)
		}
	}
	grow(nil, n.computers())
	return best
}
