// Package grid implements a sparse character board keyed by coordinate.
package grid

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"aoc2024/internal/coord"
)

// Grid maps coordinates to runes. Bounds are computed on demand and cached
// until the next write.
type Grid struct {
	cells map[coord.Coord]rune

	dirty  bool
	lo, hi coord.Coord
}

// New returns an empty grid.
func New() *Grid {
	return &Grid{cells: make(map[coord.Coord]rune), dirty: true}
}

// FromMap builds a grid that owns a copy of cells.
func FromMap(cells map[coord.Coord]rune) *Grid {
	g := New()
	maps.Copy(g.cells, cells)
	return g
}

// FromCoords builds a grid with r written at every coordinate.
func FromCoords(coords []coord.Coord, r rune) *Grid {
	g := New()
	for _, c := range coords {
		g.cells[c] = r
	}
	return g
}

// Parse reads one row per line and one cell per rune, starting at (0,0).
// Carriage returns are ignored.
func Parse(text string) *Grid {
	g := New()
	if text == "" {
		return g
	}
	for y, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		x := 0
		for _, r := range strings.TrimRight(line, "\r") {
			g.cells[coord.C(x, y)] = r
			x++
		}
	}
	return g
}

// Load parses the grid stored in the file at path.
func Load(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read grid: %w", err)
	}
	return Parse(string(data)), nil
}

// Get returns the rune at c and whether c is present.
func (g *Grid) Get(c coord.Coord) (rune, bool) {
	r, ok := g.cells[c]
	return r, ok
}

// GetOr returns the rune at c, or fallback when c is absent.
func (g *Grid) GetOr(c coord.Coord, fallback rune) rune {
	if r, ok := g.cells[c]; ok {
		return r
	}
	return fallback
}

// Set writes r at c.
func (g *Grid) Set(c coord.Coord, r rune) {
	if old, ok := g.cells[c]; ok && old == r {
		return
	}
	g.cells[c] = r
	g.dirty = true
}

// Delete removes c from the grid.
func (g *Grid) Delete(c coord.Coord) {
	if _, ok := g.cells[c]; !ok {
		return
	}
	delete(g.cells, c)
	g.dirty = true
}

// Contains reports whether c is present.
func (g *Grid) Contains(c coord.Coord) bool {
	_, ok := g.cells[c]
	return ok
}

// Len returns the number of present cells.
func (g *Grid) Len() int { return len(g.cells) }

// Coords returns every present coordinate in row-major order.
func (g *Grid) Coords() []coord.Coord {
	out := slices.Collect(maps.Keys(g.cells))
	slices.SortFunc(out, coord.CompareRowMajor)
	return out
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{
		cells: maps.Clone(g.cells),
		dirty: g.dirty,
		lo:    g.lo,
		hi:    g.hi,
	}
}

// FindCell returns the first coordinate in reading order holding r.
func (g *Grid) FindCell(r rune) (coord.Coord, bool) {
	var (
		best  coord.Coord
		found bool
	)
	for c, v := range g.cells {
		if v != r {
			continue
		}
		if !found || coord.CompareRowMajor(c, best) < 0 {
			best, found = c, true
		}
	}
	return best, found
}

// FindCells returns every coordinate holding r, sorted by y then x.
func (g *Grid) FindCells(r rune) []coord.Coord {
	var out []coord.Coord
	for c, v := range g.cells {
		if v == r {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, coord.CompareRowMajor)
	return out
}

// IndexCells maps each selected symbol to its only position. It panics when a
// selected symbol occurs more than once; use IndexRepeatingCells for those.
//
// A symbol is selected when it is listed in symbols, when notSymbols is
// non-empty and does not list it, or when both filters are empty.
func (g *Grid) IndexCells(symbols, notSymbols string) map[rune]coord.Coord {
	out := make(map[rune]coord.Coord)
	for c, r := range g.cells {
		if !selected(r, symbols, notSymbols) {
			continue
		}
		if prev, dup := out[r]; dup {
			panic(fmt.Sprintf("symbol %q appears at %v and %v; use IndexRepeatingCells", r, prev, c))
		}
		out[r] = c
	}
	return out
}

// IndexRepeatingCells maps each selected symbol to all of its positions in
// row-major order. Selection follows IndexCells.
func (g *Grid) IndexRepeatingCells(symbols, notSymbols string) map[rune][]coord.Coord {
	out := make(map[rune][]coord.Coord)
	for c, r := range g.cells {
		if selected(r, symbols, notSymbols) {
			out[r] = append(out[r], c)
		}
	}
	for _, cs := range out {
		slices.SortFunc(cs, coord.CompareRowMajor)
	}
	return out
}

func selected(r rune, symbols, notSymbols string) bool {
	switch {
	case symbols != "" && strings.ContainsRune(symbols, r):
		return true
	case notSymbols != "" && !strings.ContainsRune(notSymbols, r):
		return true
	}
	return symbols == "" && notSymbols == ""
}

// Bounds returns the tight bounding box as an inclusive lower corner and an
// exclusive upper corner. An empty grid reports ((0,0),(0,0)).
func (g *Grid) Bounds() (lo, hi coord.Coord) {
	if g.dirty {
		g.lo, g.hi = g.computeBounds()
		g.dirty = false
	}
	return g.lo, g.hi
}

func (g *Grid) computeBounds() (lo, hi coord.Coord) {
	first := true
	for c := range g.cells {
		if first {
			lo, hi = c, c
			first = false
			continue
		}
		lo.X, lo.Y = min(lo.X, c.X), min(lo.Y, c.Y)
		hi.X, hi.Y = max(hi.X, c.X), max(hi.Y, c.Y)
	}
	if first {
		return coord.Coord{}, coord.Coord{}
	}
	return lo, hi.Add(coord.C(1, 1))
}

// MinX is the smallest present x.
func (g *Grid) MinX() int {
	lo, _ := g.Bounds()
	return lo.X
}

// MinY is the smallest present y.
func (g *Grid) MinY() int {
	lo, _ := g.Bounds()
	return lo.Y
}

// MaxX is the largest present x.
func (g *Grid) MaxX() int {
	_, hi := g.Bounds()
	return hi.X - 1
}

// MaxY is the largest present y.
func (g *Grid) MaxY() int {
	_, hi := g.Bounds()
	return hi.Y - 1
}

// Width is the number of columns spanned by the bounds.
func (g *Grid) Width() int {
	lo, hi := g.Bounds()
	return hi.X - lo.X
}

// Height is the number of rows spanned by the bounds.
func (g *Grid) Height() int {
	lo, hi := g.Bounds()
	return hi.Y - lo.Y
}

// Size is Width*Height.
func (g *Grid) Size() int { return g.Width() * g.Height() }

// InBounds reports whether c lies inside the bounding box, present or not.
func (g *Grid) InBounds(c coord.Coord) bool {
	lo, hi := g.Bounds()
	return c.X >= lo.X && c.X < hi.X && c.Y >= lo.Y && c.Y < hi.Y
}

// Render draws the bounding box row by row, writing background for absent
// cells. Every row ends with a newline.
func (g *Grid) Render(background rune) string {
	return g.RenderFunc(func(_ coord.Coord, r rune, ok bool) string {
		if !ok {
			return string(background)
		}
		return string(r)
	})
}

// RenderFunc draws the bounding box using cell to format each position.
func (g *Grid) RenderFunc(cell func(c coord.Coord, r rune, ok bool) string) string {
	lo, hi := g.Bounds()
	var sb strings.Builder
	for y := lo.Y; y < hi.Y; y++ {
		for x := lo.X; x < hi.X; x++ {
			c := coord.C(x, y)
			r, ok := g.cells[c]
			sb.WriteString(cell(c, r, ok))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g *Grid) String() string {
	return g.Render('.')
}
