package day06

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

func TestSolve(t *testing.T) {
	got, err := Solve(example)
	require.NoError(t, err)
	assert.Equal(t, 41, got.Part1)
	assert.Equal(t, 6, got.Part2)
}

func TestSolveWithoutGuard(t *testing.T) {
	_, err := Solve("...\n.#.\n")
	assert.Error(t, err)
}
