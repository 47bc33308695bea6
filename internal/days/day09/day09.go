// Package day09 solves "Disk Fragmenter".
package day09

import (
	"fmt"
	"strings"

	"aoc2024/internal/puzzle"
)

func init() {
	puzzle.Register(9, "Disk Fragmenter", Solve)
}

const free = -1

// span is a run of blocks. Free runs carry id -1.
type span struct {
	id, pos, length int
}

// Solve compacts the disk block by block, then whole file by whole file, and
// returns both checksums.
func Solve(in string) (puzzle.Answers, error) {
	files, gaps, err := parse(strings.TrimSpace(in))
	if err != nil {
		return puzzle.Answers{}, err
	}
	return puzzle.Answers{
		Part1: checksumBlocks(compactBlocks(files)),
		Part2: checksumFiles(compactFiles(files, gaps)),
	}, nil
}

func parse(dense string) (files, gaps []span, err error) {
	pos := 0
	for i, r := range dense {
		if r < '0' || r > '9' {
			return nil, nil, fmt.Errorf("invalid disk map digit %q at %d", r, i)
		}
		n := int(r - '0')
		if i%2 == 0 {
			files = append(files, span{id: i / 2, pos: pos, length: n})
		} else if n > 0 {
			gaps = append(gaps, span{id: free, pos: pos, length: n})
		}
		pos += n
	}
	return files, gaps, nil
}

// compactBlocks moves single blocks from the end of the disk into the
// leftmost free block until no gaps remain between files.
func compactBlocks(files []span) []int {
	size := 0
	for _, f := range files {
		size = max(size, f.pos+f.length)
	}
	disk := make([]int, size)
	for i := range disk {
		disk[i] = free
	}
	for _, f := range files {
		for i := range f.length {
			disk[f.pos+i] = f.id
		}
	}

	lo, hi := 0, len(disk)-1
	for {
		for lo < hi && disk[lo] != free {
			lo++
		}
		for hi > lo && disk[hi] == free {
			hi--
		}
		if lo >= hi {
			return disk
		}
		disk[lo], disk[hi] = disk[hi], free
	}
}

// compactFiles moves each file once, highest id first, into the leftmost gap
// that holds it and lies to its left.
func compactFiles(files, gaps []span) []span {
	files = append([]span(nil), files...)
	gaps = append([]span(nil), gaps...)
	for fi := len(files) - 1; fi >= 0; fi-- {
		f := &files[fi]
		for gi := range gaps {
			g := &gaps[gi]
			if g.pos >= f.pos {
				break
			}
			if g.length < f.length {
				continue
			}
			f.pos = g.pos
			g.pos += f.length
			g.length -= f.length
			break
		}
	}
	return files
}

func checksumBlocks(disk []int) int {
	sum := 0
	for i, id := range disk {
		if id != free {
			sum += i * id
		}
	}
	return sum
}

func checksumFiles(files []span) int {
	sum := 0
	for _, f := range files {
		for i := range f.length {
			sum += (f.pos + i) * f.id
		}
	}
	return sum
}
