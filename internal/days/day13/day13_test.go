package day13

import (
	"strconv"
	"testing"

	"aoc2024/internal/coord"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `Button A: X+94, Y+34
Button B: X+22, Y+67
Prize: X=8400, Y=5400

Button A: X+26, Y+66
Button B: X+67, Y+21
Prize: X=12748, Y=12176

Button A: X+17, Y+86
Button B: X+84, Y+37
Prize: X=7870, Y=6450

Button A: X+69, Y+23
Button B: X+27, Y+71
Prize: X=18641, Y=10279
`

func TestSolvePart1(t *testing.T) {
	got, err := Solve(example)
	require.NoError(t, err)
	assert.Equal(t, 480, got.Part1)
}

func TestFarPrizes(t *testing.T) {
	machines, err := parse(example)
	require.NoError(t, err)
	require.Len(t, machines, 4)

	var winnable []int
	for i, m := range machines {
		m.prize = m.prize.Add(coord.C(prizeOffset, prizeOffset))
		_, ok, err := m.solveCost()
		require.NoError(t, err)
		if ok {
			winnable = append(winnable, i)
		}
	}
	assert.Equal(t, []int{1, 3}, winnable)
}

func TestSolveCostMatchesSearch(t *testing.T) {
	machines, err := parse(example)
	require.NoError(t, err)
	for _, m := range machines {
		want, wantOK := m.searchCost()
		got, gotOK, err := m.solveCost()
		require.NoError(t, err)
		assert.Equal(t, wantOK, gotOK)
		assert.Equal(t, want, got)
	}
}

func TestCollinear(t *testing.T) {
	m := machine{a: coord.C(1, 1), b: coord.C(2, 2), prize: coord.C(4, 4)}
	_, _, err := m.solveCost()
	assert.ErrorIs(t, err, ErrCollinear)
}

func TestParseRejectsOverflow(t *testing.T) {
	_, err := parse("Button A: X+1, Y+1\nButton B: X+2, Y+3\nPrize: X=99999999999999999999, Y=5\n")
	assert.ErrorIs(t, err, strconv.ErrRange)
}
