package day07

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `190: 10 19
3267: 81 40 27
83: 17 5
156: 15 6
7290: 6 8 6 15
161011: 16 10 13
192: 17 8 14
21037: 9 7 18 13
292: 11 6 16 20
`

func TestSolve(t *testing.T) {
	got, err := Solve(example)
	require.NoError(t, err)
	assert.Equal(t, 3749, got.Part1)
	assert.Equal(t, 11387, got.Part2)
}

func TestConcat(t *testing.T) {
	assert.Equal(t, 1234, concat(12, 34))
	assert.Equal(t, 15, concat(1, 5))
	assert.Equal(t, 100, concat(10, 0))
}
