// Package trebuchet recovers calibration values from amended document lines.
//
// Each line yields a two-digit number built from its first and last digit.
// Part 2 also counts digits spelled out as words, which may share letters
// ("eightwo" holds 8 then 2).
package trebuchet

import (
	"strings"

	"aoc-2023/internal/puzzle"
)

var spelled = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt returns the digit starting at s[i], if any.
func digitAt(s string, i int, words bool) (int, bool) {
	if c := s[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}

	if !words {
		return 0, false
	}

	for n, w := range spelled {
		if strings.HasPrefix(s[i:], w) {
			return n + 1, true
		}
	}

	return 0, false
}

// Calibration returns the value of one line, or 0 when it holds no digit.
func Calibration(line string, words bool) int {
	first, last := -1, -1

	for i := range len(line) {
		d, ok := digitAt(line, i, words)
		if !ok {
			continue
		}

		if first < 0 {
			first = d
		}

		last = d
	}

	if first < 0 {
		return 0
	}

	return first*10 + last
}

func sum(input string, words bool) int {
	total := 0
	for _, line := range strings.Split(input, "\n") {
		total += Calibration(strings.TrimSpace(line), words)
	}

	return total
}

// Part1 sums calibration values using numeric digits only.
func Part1(input string) (int, error) {
	return sum(input, false), nil
}

// Part2 sums calibration values counting spelled digits too.
func Part2(input string) (int, error) {
	return sum(input, true), nil
}

// Solve computes both parts.
func Solve(input string) (puzzle.Answer, error) {
	p1, _ := Part1(input)
	p2, _ := Part2(input)

	return puzzle.Both(int64(p1), int64(p2)), nil
}
