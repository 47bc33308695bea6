// Package puzzle holds the registry of daily solvers.
package puzzle

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrUnknownDay is returned when no solver is registered for a day.
var ErrUnknownDay = errors.New("no solver registered")

// FirstDay and LastDay bound the event calendar.
const (
	FirstDay = 1
	LastDay  = 25
)

// SolveFunc computes both answers for one input.
type SolveFunc func(input string) (Answers, error)

// Answers is the result of one solver run. A nil part is not reported.
type Answers struct {
	Part1 any
	Part2 any

	// Debug carries optional output for a human, such as a rendered board.
	Debug string
}

// Lines formats the answers as "Part N: value" lines.
func (a Answers) Lines() []string {
	var out []string
	for i, v := range []any{a.Part1, a.Part2} {
		if v == nil {
			continue
		}
		out = append(out, fmt.Sprintf("Part %d: %v", i+1, v))
	}
	return out
}

// Puzzle is a registered solver.
type Puzzle struct {
	Day   int
	Title string
	Solve SolveFunc

	// Sample solves the small example input when the puzzle sizes differ
	// between the example and the real input. Nil means Solve handles both.
	Sample SolveFunc
}

// ForSample returns p with Solve replaced by the sample solver, if any.
func (p Puzzle) ForSample() Puzzle {
	if p.Sample != nil {
		p.Solve = p.Sample
	}
	return p
}

var (
	mu       sync.RWMutex
	registry = make(map[int]Puzzle)
)

// Register adds a solver. It panics on a duplicate or out-of-range day.
func Register(day int, title string, solve SolveFunc) {
	if day < FirstDay || day > LastDay {
		panic(fmt.Sprintf("puzzle: day %d out of range", day))
	}
	if solve == nil {
		panic(fmt.Sprintf("puzzle: nil solver for day %d", day))
	}
	mu.Lock()
	defer mu.Unlock()
	if _, dup := registry[day]; dup {
		panic(fmt.Sprintf("puzzle: day %d registered twice", day))
	}
	registry[day] = Puzzle{Day: day, Title: title, Solve: solve}
}

// RegisterSample adds the example-input solver for an already registered day.
// It panics if the day is unknown or already has one.
func RegisterSample(day int, solve SolveFunc) {
	if solve == nil {
		panic(fmt.Sprintf("puzzle: nil sample solver for day %d", day))
	}
	mu.Lock()
	defer mu.Unlock()
	p, ok := registry[day]
	if !ok {
		panic(fmt.Sprintf("puzzle: sample solver for unregistered day %d", day))
	}
	if p.Sample != nil {
		panic(fmt.Sprintf("puzzle: day %d sample solver registered twice", day))
	}
	p.Sample = solve
	registry[day] = p
}

// Lookup returns the solver for day.
func Lookup(day int) (Puzzle, bool) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := registry[day]
	return p, ok
}

// Get is like Lookup but returns ErrUnknownDay for a missing day.
func Get(day int) (Puzzle, error) {
	p, ok := Lookup(day)
	if !ok {
		return Puzzle{}, fmt.Errorf("day %d: %w", day, ErrUnknownDay)
	}
	return p, nil
}

// Days returns the registered days in ascending order.
func Days() []int {
	mu.RLock()
	defer mu.RUnlock()
	days := make([]int, 0, len(registry))
	for d := range registry {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}

// All returns every registered puzzle ordered by day.
func All() []Puzzle {
	days := Days()
	out := make([]Puzzle, 0, len(days))
	for _, d := range days {
		p, _ := Lookup(d)
		out = append(out, p)
	}
	return out
}
