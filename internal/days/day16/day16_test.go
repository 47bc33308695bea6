package day16

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve(t *testing.T) {
	tests := []struct {
		name         string
		maze         string
		score, tiles int
	}{
		{
			name: "single best path",
			maze: `#####
#..E#
#.#.#
#S..#
#####
`,
			score: 1004,
			tiles: 5,
		},
		{
			name: "two equal paths",
			maze: `#####
#...#
#S#E#
#...#
#####
`,
			score: 3004,
			tiles: 8,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Solve(tt.maze)
			require.NoError(t, err)
			assert.Equal(t, tt.score, got.Part1)
			assert.Equal(t, tt.tiles, got.Part2)
		})
	}
}

func TestSolveErrors(t *testing.T) {
	_, err := Solve("#S#\n")
	assert.Error(t, err)

	_, err = Solve("#S#E#\n")
	assert.Error(t, err)
}
