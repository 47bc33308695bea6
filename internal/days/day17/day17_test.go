package day17

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstructions(t *testing.T) {
	tests := []struct {
		name    string
		cpu     cpu
		program []int
		output  []int
		check   func(t *testing.T, m cpu)
	}{
		{
			name:    "bst",
			cpu:     cpu{c: 9},
			program: []int{2, 6},
			check:   func(t *testing.T, m cpu) { assert.Equal(t, 1, m.b) },
		},
		{
			name:    "out",
			cpu:     cpu{a: 10},
			program: []int{5, 0, 5, 1, 5, 4},
			output:  []int{0, 1, 2},
		},
		{
			name:    "loop",
			cpu:     cpu{a: 2024},
			program: []int{0, 1, 5, 4, 3, 0},
			output:  []int{4, 2, 5, 6, 7, 7, 7, 7, 3, 1, 0},
			check:   func(t *testing.T, m cpu) { assert.Zero(t, m.a) },
		},
		{
			name:    "bxl",
			cpu:     cpu{b: 29},
			program: []int{1, 7},
			check:   func(t *testing.T, m cpu) { assert.Equal(t, 26, m.b) },
		},
		{
			name:    "bxc",
			cpu:     cpu{b: 2024, c: 43690},
			program: []int{4, 0},
			check:   func(t *testing.T, m cpu) { assert.Equal(t, 44354, m.b) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.cpu
			got, err := m.run(tt.program)
			require.NoError(t, err)
			assert.Equal(t, tt.output, got)
			if tt.check != nil {
				tt.check(t, m)
			}
		})
	}
}

func TestRunExample(t *testing.T) {
	m, program, err := parse("Register A: 729\nRegister B: 0\nRegister C: 0\n\nProgram: 0,1,5,4,3,0\n")
	require.NoError(t, err)
	got, err := m.run(program)
	require.NoError(t, err)
	assert.Equal(t, "4,6,3,5,6,3,5,2,1,0", join(got))

	_, err = quine(m, program)
	assert.ErrorIs(t, err, ErrNoQuine)
}

func TestSolveQuine(t *testing.T) {
	got, err := Solve("Register A: 2024\nRegister B: 0\nRegister C: 0\n\nProgram: 0,3,5,4,3,0\n")
	require.NoError(t, err)
	assert.Equal(t, 117440, got.Part2)
	assert.Equal(t, "5,7,3,0", got.Part1)
}

func TestInvalidCombo(t *testing.T) {
	m := cpu{}
	_, err := m.run([]int{5, 7})
	assert.Error(t, err)
}

func TestParseRejectsOverflow(t *testing.T) {
	_, _, err := parse("Register A: 99999999999999999999\nRegister B: 0\nRegister C: 0\n\nProgram: 0,3\n")
	assert.ErrorIs(t, err, strconv.ErrRange)
	assert.ErrorContains(t, err, "register A")
}
