package camelcards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
`

func TestSolve(t *testing.T) {
	got, err := Solve(example)
	require.NoError(t, err)

	assert.Equal(t, int64(6440), got.Part1)
	assert.Equal(t, int64(5905), got.Part2)
}

func TestKind(t *testing.T) {
	tests := []struct {
		cards     string
		kind      Kind
		jokerKind Kind
	}{
		{"AAAAA", FiveOfAKind, FiveOfAKind},
		{"AA8AA", FourOfAKind, FourOfAKind},
		{"23332", FullHouse, FullHouse},
		{"TTT98", ThreeOfAKind, ThreeOfAKind},
		{"23432", TwoPair, TwoPair},
		{"A23A4", OnePair, OnePair},
		{"23456", HighCard, HighCard},
		{"2233J", TwoPair, FullHouse},
		{"2333J", ThreeOfAKind, FourOfAKind},
		{"22JJ3", TwoPair, FourOfAKind},
		{"JJJJJ", FiveOfAKind, FiveOfAKind},
		{"JJ234", OnePair, ThreeOfAKind},
		{"J2345", HighCard, OnePair},
		{"KTJJT", TwoPair, FourOfAKind},
	}

	for _, tt := range tests {
		t.Run(tt.cards, func(t *testing.T) {
			h := Hand{Cards: tt.cards}
			assert.Equal(t, tt.kind, h.Kind(false))
			assert.Equal(t, tt.jokerKind, h.Kind(true))
		})
	}
}

func TestCompare(t *testing.T) {
	hand := func(cards string) Hand { return Hand{Cards: cards} }

	assert.Positive(t, Compare(hand("77888"), hand("77788"), false))
	assert.Positive(t, Compare(hand("33332"), hand("2AAAA"), false))
	assert.Zero(t, Compare(hand("KK677"), hand("KK677"), false))

	// joker is the weakest card when breaking ties
	assert.Negative(t, Compare(hand("JKKK2"), hand("QQQQ2"), true))
	assert.Positive(t, Compare(hand("J2345"), hand("T2345"), false))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "full house", FullHouse.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func TestParseHandErrors(t *testing.T) {
	for _, line := range []string{
		"32T3K",
		"32T3 765",
		"32T3KA 765",
		"32X3K 765",
		"32T3K bid",
		"32T3K 765 1",
	} {
		_, err := ParseHand(line)
		assert.Error(t, err, line)
	}
}
