package day18

import (
	"testing"

	"aoc2024/internal/coord"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve(t *testing.T) {
	bytes, err := parse("1,0\n1,1\n2,0\n1,2\n")
	require.NoError(t, err)

	got, err := solve(memory{3}, bytes, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Part1)
	assert.Equal(t, "1,2", got.Part2)
}

func TestSteps(t *testing.T) {
	m := memory{3}
	steps, ok := m.steps(nil)
	require.True(t, ok)
	assert.Equal(t, 4, steps)

	_, ok = m.steps([]coord.Coord{coord.C(1, 0), coord.C(0, 1)})
	assert.False(t, ok)
}

func TestSolveErrors(t *testing.T) {
	bytes, err := parse("1,0\n")
	require.NoError(t, err)

	_, err = solve(memory{3}, bytes, 2)
	assert.Error(t, err)

	_, err = solve(memory{3}, bytes, 1)
	assert.Error(t, err, "exit is never cut off")

	_, err = parse("1;2\n")
	assert.Error(t, err)
}

const example = `5,4
4,2
4,5
3,0
2,1
6,3
2,4
1,5
0,6
3,3
2,6
5,1
1,2
5,5
2,5
6,5
1,4
0,4
6,4
1,1
6,1
1,0
0,5
1,6
2,0
`

func TestSolveSample(t *testing.T) {
	got, err := SolveSample(example)
	require.NoError(t, err)
	assert.Equal(t, 22, got.Part1)
	assert.Equal(t, "6,1", got.Part2)

	_, err = Solve(example)
	assert.ErrorContains(t, err, "only 25 bytes fall, need 1024")
}
