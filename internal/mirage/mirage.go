// Package mirage extrapolates oasis sensor histories.
//
// Each history is reduced to rows of pairwise differences until a row is all
// zeros. Part 1 predicts the next value, Part 2 the value before the first.
package mirage

import (
	"fmt"
	"slices"
	"strings"

	"aoc-2023/internal/common"
	"aoc-2023/internal/puzzle"
)

// Next predicts the value after the last one in history. An empty history
// predicts 0.
func Next(history []int64) int64 {
	var next int64

	row := slices.Clone(history)
	for !allZero(row) {
		last, _ := common.Last(row)
		next += last
		row = differences(row)
	}

	return next
}

// Previous predicts the value before the first one in history.
func Previous(history []int64) int64 {
	reversed := slices.Clone(history)
	slices.Reverse(reversed)

	return Next(reversed)
}

func differences(row []int64) []int64 {
	out := make([]int64, 0, len(row)-1)
	for i := 1; i < len(row); i++ {
		out = append(out, row[i]-row[i-1])
	}

	return out
}

func allZero(row []int64) bool {
	for _, v := range row {
		if v != 0 {
			return false
		}
	}

	return true
}

// Parse reads one history per non-blank line.
func Parse(input string) ([][]int64, error) {
	var histories [][]int64

	for i, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		h, err := common.ParseInts[int64](line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		histories = append(histories, h)
	}

	return histories, nil
}

// Part1 sums forward predictions.
func Part1(input string) (int64, error) {
	return sum(input, Next)
}

// Part2 sums backward predictions.
func Part2(input string) (int64, error) {
	return sum(input, Previous)
}

func sum(input string, predict func([]int64) int64) (int64, error) {
	histories, err := Parse(input)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, h := range histories {
		total += predict(h)
	}

	return total, nil
}

// Solve computes both parts.
func Solve(input string) (puzzle.Answer, error) {
	p1, err := Part1(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	p2, err := Part2(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Both(p1, p2), nil
}
