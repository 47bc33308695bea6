package day22

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext(t *testing.T) {
	want := []int{15887950, 16495136, 527345, 704524, 1553684, 12683156, 11100544, 12249484, 7753432, 5908254}
	n := 123
	for _, w := range want {
		n = next(n)
		assert.Equal(t, w, n)
	}
}

func TestSolvePart1(t *testing.T) {
	got, err := Solve("1\n10\n100\n2024\n")
	require.NoError(t, err)
	assert.Equal(t, 37327623, got.Part1)
	assert.Equal(t, 8685429, nth(1, rounds))
}

func TestBestSequence(t *testing.T) {
	assert.Equal(t, 23, bestSequence([]int{1, 2, 3, 2024}))
}

func TestSolveRejectsGarbage(t *testing.T) {
	_, err := Solve("12 13\n")
	assert.Error(t, err)
}
