// Package direction models compass directions as values of a closed scheme.
//
// Every scheme lists its directions clockwise, so turning is index
// arithmetic over tables computed once when the scheme is built. Schemes
// are package-level values and are never modified after initialization.
package direction

import (
	"errors"
	"fmt"

	"aoc2024/internal/coord"
)

// ErrUnknownDirection is returned when a name or arrow is not part of a scheme.
var ErrUnknownDirection = errors.New("unknown direction")

// Scheme is a closed set of directions ordered clockwise.
type Scheme struct {
	name    string
	names   []string
	deltas  []coord.Coord
	left    []uint8
	right   []uint8
	reverse []uint8
	byName  map[string]uint8
}

// Direction is a named unit step belonging to one scheme. The zero value
// belongs to no scheme and is not valid.
type Direction struct {
	scheme *Scheme
	index  uint8
}

type def struct {
	name  string
	delta coord.Coord
}

var (
	// Compass4 holds N, E, S and W.
	Compass4 = newScheme("compass4", []def{
		{"N", coord.C(0, -1)},
		{"E", coord.C(1, 0)},
		{"S", coord.C(0, 1)},
		{"W", coord.C(-1, 0)},
	})

	// Compass8 adds the diagonals to Compass4. Turning moves 45 degrees.
	Compass8 = newScheme("compass8", []def{
		{"N", coord.C(0, -1)},
		{"NE", coord.C(1, -1)},
		{"E", coord.C(1, 0)},
		{"SE", coord.C(1, 1)},
		{"S", coord.C(0, 1)},
		{"SW", coord.C(-1, 1)},
		{"W", coord.C(-1, 0)},
		{"NW", coord.C(-1, -1)},
	})

	// UDLR is the up/down/left/right naming used by movement puzzles.
	UDLR = newScheme("udlr", []def{
		{"U", coord.C(0, -1)},
		{"R", coord.C(1, 0)},
		{"D", coord.C(0, 1)},
		{"L", coord.C(-1, 0)},
	})
)

var (
	North = Compass4.MustParse("N")
	East  = Compass4.MustParse("E")
	South = Compass4.MustParse("S")
	West  = Compass4.MustParse("W")
)

var arrows = map[rune]Direction{
	'^': North,
	'>': East,
	'v': South,
	'<': West,
}

func newScheme(name string, defs []def) *Scheme {
	n := len(defs)
	if n == 0 || n%2 != 0 {
		panic(fmt.Sprintf("scheme %s must hold an even, non-zero number of directions", name))
	}
	s := &Scheme{
		name:    name,
		names:   make([]string, n),
		deltas:  make([]coord.Coord, n),
		left:    make([]uint8, n),
		right:   make([]uint8, n),
		reverse: make([]uint8, n),
		byName:  make(map[string]uint8, n),
	}
	for i, d := range defs {
		if _, dup := s.byName[d.name]; dup {
			panic(fmt.Sprintf("scheme %s: duplicate direction %q", name, d.name))
		}
		s.names[i] = d.name
		s.deltas[i] = d.delta
		s.byName[d.name] = uint8(i)
		s.right[i] = uint8((i + 1) % n)
		s.left[i] = uint8((i + n - 1) % n)
		s.reverse[i] = uint8((i + n/2) % n)
	}
	for i, r := range s.reverse {
		if s.deltas[r] != s.deltas[i].Mul(-1) {
			panic(fmt.Sprintf("scheme %s: %s is not the reverse of %s", name, s.names[r], s.names[i]))
		}
	}
	return s
}

// Name identifies the scheme.
func (s *Scheme) Name() string { return s.name }

// Len returns the number of directions in the scheme.
func (s *Scheme) Len() int { return len(s.names) }

// Values returns every direction of the scheme in clockwise order.
func (s *Scheme) Values() []Direction {
	out := make([]Direction, len(s.names))
	for i := range s.names {
		out[i] = Direction{scheme: s, index: uint8(i)}
	}
	return out
}

// Parse looks up a direction by its symbolic name.
func (s *Scheme) Parse(name string) (Direction, error) {
	i, ok := s.byName[name]
	if !ok {
		return Direction{}, fmt.Errorf("%w %q for scheme %s", ErrUnknownDirection, name, s.name)
	}
	return Direction{scheme: s, index: i}, nil
}

// MustParse is like Parse but panics on an unknown name.
func (s *Scheme) MustParse(name string) Direction {
	d, err := s.Parse(name)
	if err != nil {
		panic(err)
	}
	return d
}

// FromArrow maps one of ^ > v < onto Compass4.
func FromArrow(r rune) (Direction, error) {
	d, ok := arrows[r]
	if !ok {
		return Direction{}, fmt.Errorf("%w arrow %q", ErrUnknownDirection, r)
	}
	return d, nil
}

// IsValid reports whether d belongs to a scheme.
func (d Direction) IsValid() bool { return d.scheme != nil }

// Scheme returns the scheme d belongs to.
func (d Direction) Scheme() *Scheme { return d.scheme }

// Name returns the symbolic name, e.g. "NE".
func (d Direction) Name() string { return d.scheme.names[d.index] }

func (d Direction) String() string {
	if d.scheme == nil {
		return "<invalid>"
	}
	return d.Name()
}

// Delta is the unit step of d.
func (d Direction) Delta() coord.Coord { return d.scheme.deltas[d.index] }

// Step moves c one cell in direction d.
func (d Direction) Step(c coord.Coord) coord.Coord { return c.Add(d.Delta()) }

// Forward moves c by dist cells. A negative dist moves backwards.
func (d Direction) Forward(c coord.Coord, dist int) coord.Coord {
	return c.Add(d.Delta().Mul(dist))
}

// Left turns counter-clockwise by one step of the scheme.
func (d Direction) Left() Direction {
	return Direction{scheme: d.scheme, index: d.scheme.left[d.index]}
}

// Right turns clockwise by one step of the scheme.
func (d Direction) Right() Direction {
	return Direction{scheme: d.scheme, index: d.scheme.right[d.index]}
}

// Reverse returns the direction with the negated delta.
func (d Direction) Reverse() Direction {
	return Direction{scheme: d.scheme, index: d.scheme.reverse[d.index]}
}

// Arrow renders a Compass4 or UDLR direction as ^ > v <.
func (d Direction) Arrow() rune {
	switch d.Delta() {
	case coord.C(0, -1):
		return '^'
	case coord.C(1, 0):
		return '>'
	case coord.C(0, 1):
		return 'v'
	case coord.C(-1, 0):
		return '<'
	}
	return '?'
}
