// Package input loads puzzle inputs and splits them into the pieces solvers
// parse.
package input

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrEmptyInput is returned when an input file holds no data.
var ErrEmptyInput = errors.New("input is empty")

// Load reads the whole input file at path.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%s: %w", path, ErrEmptyInput)
	}
	return string(data), nil
}

// Lines splits s into lines, dropping carriage returns and the trailing
// newline.
func Lines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Blocks splits s on blank lines.
func Blocks(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.Trim(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n\n")
}

// Ints parses every field as a base-10 integer.
func Ints(fields []string) ([]int, error) {
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", f, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// Fields parses the whitespace separated integers of s.
func Fields(s string) ([]int, error) {
	return Ints(strings.Fields(s))
}

// Split parses the integers of s separated by sep.
func Split(s, sep string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	return Ints(strings.Split(s, sep))
}
