// Package days links every daily solver into the puzzle registry.
package days

import (
	_ "aoc2024/internal/days/day01"
	_ "aoc2024/internal/days/day02"
	_ "aoc2024/internal/days/day03"
	_ "aoc2024/internal/days/day04"
	_ "aoc2024/internal/days/day05"
	_ "aoc2024/internal/days/day06"
	_ "aoc2024/internal/days/day07"
	_ "aoc2024/internal/days/day08"
	_ "aoc2024/internal/days/day09"
	_ "aoc2024/internal/days/day10"
	_ "aoc2024/internal/days/day11"
	_ "aoc2024/internal/days/day12"
	_ "aoc2024/internal/days/day13"
	_ "aoc2024/internal/days/day14"
	_ "aoc2024/internal/days/day15"
	_ "aoc2024/internal/days/day16"
	_ "aoc2024/internal/days/day17"
	_ "aoc2024/internal/days/day18"
	_ "aoc2024/internal/days/day19"
	_ "aoc2024/internal/days/day20"
	_ "aoc2024/internal/days/day21"
	_ "aoc2024/internal/days/day22"
	_ "aoc2024/internal/days/day23"
	_ "aoc2024/internal/days/day24"
	_ "aoc2024/internal/days/day25"
)
