package day21

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `029A
980A
179A
456A
379A
`

func TestComplexity(t *testing.T) {
	got, err := complexity([]string{"029A", "980A", "179A", "456A", "379A"}, 2)
	require.NoError(t, err)
	assert.Equal(t, 126384, got)
}

func TestPresses(t *testing.T) {
	tests := map[string]int{
		"029A": 68,
		"980A": 60,
		"179A": 68,
		"456A": 64,
		"379A": 64,
	}
	for code, want := range tests {
		got, err := presses(code, 2)
		require.NoError(t, err)
		assert.Equal(t, want, got, code)
	}
}

func TestPathAvoidsGap(t *testing.T) {
	// From A to 1 on the numeric pad, moving left first would cross the gap.
	assert.Equal(t, "^<<A", numericPad.path(numericPad.keys['A'], numericPad.keys['1']))
	assert.Equal(t, ">>vA", numericPad.path(numericPad.keys['1'], numericPad.keys['A']))
	// From < on the directional pad, up first would cross the gap.
	assert.Equal(t, ">^A", directionalPad.path(directionalPad.keys['<'], directionalPad.keys['^']))
}

func TestSolve(t *testing.T) {
	got, err := Solve(example)
	require.NoError(t, err)
	assert.Equal(t, 126384, got.Part1)
	assert.Positive(t, got.Part2)

	_, err = Solve("12B\n")
	assert.Error(t, err)
}
