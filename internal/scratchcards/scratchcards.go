// Package scratchcards scores scratchcards.
//
// A card reads "Card 1: 41 48 83 | 83 86 6". Numbers left of the bar win,
// numbers right of it are the ones held. Part 1 scores 2^(matches-1) per
// card. Part 2 lets a card with m matches win one copy of each of the next m
// cards and counts how many cards are held in the end.
package scratchcards

import (
	"fmt"
	"strings"

	"aoc-2023/internal/common"
	"aoc-2023/internal/puzzle"
)

// Card is one scratchcard.
type Card struct {
	ID      int
	Winning []int
	Have    []int
}

// Matches counts held numbers that are also winning numbers.
func (c Card) Matches() int {
	winning := make(map[int]struct{}, len(c.Winning))
	for _, n := range c.Winning {
		winning[n] = struct{}{}
	}

	count := 0
	for _, n := range c.Have {
		if _, ok := winning[n]; ok {
			count++
		}
	}

	return count
}

// Points is 0 without matches, else 2^(matches-1).
func (c Card) Points() int {
	m := c.Matches()
	if m == 0 {
		return 0
	}

	return 1 << (m - 1)
}

// ParseCard parses one line.
func ParseCard(line string) (Card, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, fmt.Errorf("missing ':' in %q", line)
	}

	idText, ok := strings.CutPrefix(strings.TrimSpace(head), "Card")
	if !ok {
		return Card{}, fmt.Errorf("missing 'Card' prefix in %q", line)
	}

	id, err := common.ParseInt[int](strings.TrimSpace(idText))
	if err != nil {
		return Card{}, fmt.Errorf("card id: %w", err)
	}

	winText, haveText, ok := strings.Cut(body, "|")
	if !ok {
		return Card{}, fmt.Errorf("card %d: missing '|'", id)
	}

	winning, err := common.ParseInts[int](winText)
	if err != nil {
		return Card{}, fmt.Errorf("card %d: %w", id, err)
	}

	have, err := common.ParseInts[int](haveText)
	if err != nil {
		return Card{}, fmt.Errorf("card %d: %w", id, err)
	}

	return Card{ID: id, Winning: winning, Have: have}, nil
}

// ParseCards parses every non-blank line.
func ParseCards(input string) ([]Card, error) {
	var cards []Card

	for i, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		c, err := ParseCard(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		cards = append(cards, c)
	}

	return cards, nil
}

// Copies returns how many of each card end up held, in input order. Wins
// past the last card are dropped.
func Copies(cards []Card) []int {
	counts := make([]int, len(cards))
	for i := range counts {
		counts[i] = 1
	}

	for i, c := range cards {
		m := c.Matches()
		for j := i + 1; j <= i+m && j < len(cards); j++ {
			counts[j] += counts[i]
		}
	}

	return counts
}

// Part1 sums card points.
func Part1(input string) (int, error) {
	cards, err := ParseCards(input)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, c := range cards {
		total += c.Points()
	}

	return total, nil
}

// Part2 counts cards held after all copies are won.
func Part2(input string) (int, error) {
	cards, err := ParseCards(input)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, n := range Copies(cards) {
		total += n
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

	return puzzle.Both(int64(p1), int64(p2)), nil
}
