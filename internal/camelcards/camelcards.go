// Package camelcards ranks Camel Cards hands.
//
// Hands are ordered by type first, then card by card from the left. With
// jokers enabled, J is the weakest card and counts towards whichever other
// card is already most common in the hand.
package camelcards

import (
	"fmt"
	"slices"
	"strings"

	"aoc-2023/internal/common"
	"aoc-2023/internal/puzzle"
)

// HandSize is the number of cards in a hand.
const HandSize = 5

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind is a hand type, weakest first.
type Kind int

const (
	HighCard     Kind = iota // high card
	OnePair                  // one pair
	TwoPair                  // two pair
	ThreeOfAKind             // three of a kind
	FullHouse                // full house
	FourOfAKind              // four of a kind
	FiveOfAKind              // five of a kind
)

const (
	order      = "23456789TJQKA"
	jokerOrder = "J23456789TQKA"
)

// Hand is five cards with a bid.
type Hand struct {
	Cards string
	Bid   int
}

// Kind classifies h. With jokers, every J joins the largest other group.
func (h Hand) Kind(jokers bool) Kind {
	var counts [256]int
	j := 0

	for i := 0; i < len(h.Cards); i++ {
		c := h.Cards[i]
		if jokers && c == 'J' {
			j++
			continue
		}

		counts[c]++
	}

	groups := make([]int, 0, HandSize)
	for _, n := range counts {
		if n > 0 {
			groups = append(groups, n)
		}
	}

	slices.SortFunc(groups, func(a, b int) int { return b - a })

	if len(groups) == 0 {
		groups = []int{j}
	} else {
		groups[0] += j
	}
	groups = append(groups, 0)

	switch {
	case groups[0] == 5:
		return FiveOfAKind
	case groups[0] == 4:
		return FourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return FullHouse
	case groups[0] == 3:
		return ThreeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return TwoPair
	case groups[0] == 2:
		return OnePair
	default:
		return HighCard
	}
}

// Compare orders a before b when it is weaker.
func Compare(a, b Hand, jokers bool) int {
	if ka, kb := a.Kind(jokers), b.Kind(jokers); ka != kb {
		return int(ka) - int(kb)
	}

	ranks := order
	if jokers {
		ranks = jokerOrder
	}

	for i := 0; i < len(a.Cards) && i < len(b.Cards); i++ {
		ra := strings.IndexByte(ranks, a.Cards[i])
		rb := strings.IndexByte(ranks, b.Cards[i])
		if ra != rb {
			return ra - rb
		}
	}

	return 0
}

// ParseHand reads "32T3K 765".
func ParseHand(line string) (Hand, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Hand{}, fmt.Errorf("want cards and bid, got %q", line)
	}

	cards := fields[0]
	if len(cards) != HandSize {
		return Hand{}, fmt.Errorf("hand %q has %d cards", cards, len(cards))
	}

	for i := 0; i < len(cards); i++ {
		if strings.IndexByte(order, cards[i]) < 0 {
			return Hand{}, fmt.Errorf("hand %q: unknown card %q", cards, cards[i])
		}
	}

	bid, err := common.ParseInt[int](fields[1])
	if err != nil {
		return Hand{}, fmt.Errorf("bid: %w", err)
	}

	return Hand{Cards: cards, Bid: bid}, nil
}

// ParseHands reads one hand per non-blank line.
func ParseHands(input string) ([]Hand, error) {
	var hands []Hand

	for i, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		h, err := ParseHand(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		hands = append(hands, h)
	}

	return hands, nil
}

// Winnings sorts a copy of hands weakest first and sums bid * rank.
func Winnings(hands []Hand, jokers bool) int {
	sorted := slices.Clone(hands)
	slices.SortStableFunc(sorted, func(a, b Hand) int { return Compare(a, b, jokers) })

	total := 0
	for i, h := range sorted {
		total += h.Bid * (i + 1)
	}

	return total
}

// Part1 scores hands without jokers.
func Part1(input string) (int, error) {
	hands, err := ParseHands(input)
	if err != nil {
		return 0, err
	}

	return Winnings(hands, false), nil
}

// Part2 scores hands with J as a joker.
func Part2(input string) (int, error) {
	hands, err := ParseHands(input)
	if err != nil {
		return 0, err
	}

	return Winnings(hands, true), nil
}

// Solve computes both parts.
func Solve(input string) (puzzle.Answer, error) {
	hands, err := ParseHands(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Both(int64(Winnings(hands, false)), int64(Winnings(hands, true))), nil
}
