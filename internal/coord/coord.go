// Package coord provides the integer 2-D vector used by every grid puzzle.
package coord

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Coord is a cell position. X grows to the right, Y grows downward.
type Coord struct {
	X, Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns c+o.
func (c Coord) Add(o Coord) Coord {
	return Coord{c.X + o.X, c.Y + o.Y}
}

// Sub returns c-o.
func (c Coord) Sub(o Coord) Coord {
	return Coord{c.X - o.X, c.Y - o.Y}
}

// Mul scales both components by k.
func (c Coord) Mul(k int) Coord {
	return Coord{c.X * k, c.Y * k}
}

// ManhattanDistance returns |c.X-o.X| + |c.Y-o.Y|.
func (c Coord) ManhattanDistance(o Coord) int {
	return AbsDiff(c.X, o.X) + AbsDiff(c.Y, o.Y)
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Compare orders coordinates by X, then Y.
func Compare(a, b Coord) int {
	if a.X != b.X {
		return cmpInt(a.X, b.X)
	}
	return cmpInt(a.Y, b.Y)
}

// CompareRowMajor orders coordinates by Y, then X, which is reading order.
func CompareRowMajor(a, b Coord) int {
	if a.Y != b.Y {
		return cmpInt(a.Y, b.Y)
	}
	return cmpInt(a.X, b.X)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Abs returns the absolute value of v.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// AbsDiff returns |a-b|.
func AbsDiff[T constraints.Signed](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}
