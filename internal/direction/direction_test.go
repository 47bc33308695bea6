package direction

import (
	"testing"

	"aoc2024/internal/coord"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompass4Turns(t *testing.T) {
	assert.Equal(t, West, North.Left())
	assert.Equal(t, East, North.Right())
	assert.Equal(t, South, North.Reverse())
	assert.Equal(t, North, West.Right())
	assert.Equal(t, "N", North.Name())
}

func TestStepAndForward(t *testing.T) {
	start := coord.C(2, 2)
	assert.Equal(t, coord.C(3, 2), East.Step(start))
	assert.Equal(t, coord.C(5, 2), East.Forward(start, 3))
	assert.Equal(t, coord.C(-1, 2), East.Forward(start, -3))
	assert.Equal(t, coord.C(2, 1), North.Step(start))
}

func TestRotationsAreClosed(t *testing.T) {
	for _, s := range []*Scheme{Compass4, Compass8, UDLR} {
		t.Run(s.Name(), func(t *testing.T) {
			for _, d := range s.Values() {
				assert.Equal(t, d, d.Reverse().Reverse())
				assert.Equal(t, d, d.Left().Right())
				assert.Equal(t, d, d.Right().Left())
				assert.Equal(t, d.Delta().Mul(-1), d.Reverse().Delta())
				assert.Same(t, s, d.Left().Scheme())
				assert.Same(t, s, d.Reverse().Scheme())

				l, r := d, d
				for range s.Len() {
					l = l.Left()
					r = r.Right()
				}
				assert.Equal(t, d, l)
				assert.Equal(t, d, r)
			}
		})
	}
}

func TestCompass8Diagonals(t *testing.T) {
	ne := Compass8.MustParse("NE")
	assert.Equal(t, "N", ne.Left().Name())
	assert.Equal(t, "E", ne.Right().Name())
	assert.Equal(t, "SW", ne.Reverse().Name())
	assert.Equal(t, coord.C(1, -1), ne.Delta())

	// Schemes do not mix even when names and deltas coincide.
	assert.NotEqual(t, North, Compass8.MustParse("N"))
}

func TestParse(t *testing.T) {
	d, err := UDLR.Parse("L")
	require.NoError(t, err)
	assert.Equal(t, coord.C(-1, 0), d.Delta())

	_, err = Compass4.Parse("NE")
	assert.ErrorIs(t, err, ErrUnknownDirection)

	assert.Panics(t, func() { Compass8.MustParse("X") })
}

func TestArrows(t *testing.T) {
	for _, r := range "^>v<" {
		d, err := FromArrow(r)
		require.NoError(t, err)
		assert.Equal(t, r, d.Arrow())
	}
	_, err := FromArrow('x')
	assert.ErrorIs(t, err, ErrUnknownDirection)
}

func TestZeroValue(t *testing.T) {
	var d Direction
	assert.False(t, d.IsValid())
	assert.Equal(t, "<invalid>", d.String())
	assert.True(t, East.IsValid())
}
