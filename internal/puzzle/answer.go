package puzzle

import (
	"fmt"
	"strings"
)

// Answer holds the results of one day. A part is absent when its Has flag is
// false.
type Answer struct {
	Part1    int64
	Part2    int64
	HasPart1 bool
	HasPart2 bool
}

// Both builds an answer with both parts.
func Both(part1, part2 int64) Answer {
	return Answer{Part1: part1, Part2: part2, HasPart1: true, HasPart2: true}
}

// Only builds an answer without a part 2.
func Only(part1 int64) Answer {
	return Answer{Part1: part1, HasPart1: true}
}

// OnlyPart2 builds an answer for inputs where part 1 cannot be asked.
func OnlyPart2(part2 int64) Answer {
	return Answer{Part2: part2, HasPart2: true}
}

// Part returns the requested part (1 or 2).
func (a Answer) Part(n int) (int64, error) {
	switch {
	case n == 1 && a.HasPart1:
		return a.Part1, nil
	case n == 2 && a.HasPart2:
		return a.Part2, nil
	case n == 1 || n == 2:
		return 0, fmt.Errorf("part %d is not available", n)
	default:
		return 0, fmt.Errorf("invalid part %d", n)
	}
}

func (a Answer) String() string {
	var parts []string
	if a.HasPart1 {
		parts = append(parts, fmt.Sprintf("Part 1: %d", a.Part1))
	}

	if a.HasPart2 {
		parts = append(parts, fmt.Sprintf("Part 2: %d", a.Part2))
	}

	if len(parts) == 0 {
		return "no answer"
	}

	return strings.Join(parts, ", ")
}

// Func solves one day from its raw input.
type Func func(input string) (Answer, error)
