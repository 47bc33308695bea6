package day25

import (
	"testing"

	"aoc2024/internal/grid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `#####
.####
.####
.####
.#.#.
.#...
.....

#####
##.##
.#.##
...##
...#.
...#.
.....

.....
#....
#....
#...#
#.#.#
#.###
#####

.....
.....
#.#..
###..
###.#
###.#
#####

.....
.....
.....
#....
#.#..
#.#.#
#####
`

func TestSolve(t *testing.T) {
	got, err := Solve(example)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Part1)
	assert.Nil(t, got.Part2)
	assert.Equal(t, []string{"Part 1: 3"}, got.Lines())
}

func TestRead(t *testing.T) {
	heights, lock := read(grid.Parse("#####\n.####\n.####\n.####\n.#.#.\n.#...\n....."))
	assert.True(t, lock)
	assert.Equal(t, schematic{0, 5, 3, 4, 3}, heights)

	heights, lock = read(grid.Parse(".....\n#....\n#....\n#...#\n#.#.#\n#.###\n#####"))
	assert.False(t, lock)
	assert.Equal(t, schematic{5, 0, 2, 1, 3}, heights)
}

func TestMismatchedHeights(t *testing.T) {
	_, err := Solve("#####\n.....\n.....\n\n.....\n#####\n")
	assert.Error(t, err)
}
