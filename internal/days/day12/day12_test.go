package day12

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve(t *testing.T) {
	tests := []struct {
		name         string
		in           string
		part1, part2 int
	}{
		{
			name:  "small",
			in:    "AAAA\nBBCD\nBBCC\nEEEC\n",
			part1: 140,
			part2: 80,
		},
		{
			name:  "nested",
			in:    "OOOOO\nOXOXO\nOOOOO\nOXOXO\nOOOOO\n",
			part1: 772,
			part2: 436,
		},
		{
			name: "large",
			in: `RRRRIICCFF
RRRRIICCCF
VVRRRCCFFF
VVRCCCJFFF
VVVVCJJCFE
VVIVCCJJEE
VVIIICJJEE
MIIIIIJJEE
MIIISIJEEE
MMMISSJEEE
`,
			part1: 1930,
			part2: 1206,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Solve(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.part1, got.Part1)
			assert.Equal(t, tt.part2, got.Part2)
		})
	}
}
