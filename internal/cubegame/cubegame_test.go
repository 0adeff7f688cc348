package cubegame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
`

func TestSolve(t *testing.T) {
	got, err := Solve(example)
	require.NoError(t, err)

	assert.Equal(t, int64(8), got.Part1)
	assert.Equal(t, int64(2286), got.Part2)
}

func TestParseGame(t *testing.T) {
	g, err := ParseGame("Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red")
	require.NoError(t, err)

	assert.Equal(t, 3, g.ID)
	assert.Equal(t, []Set{
		{Red: 20, Green: 8, Blue: 6},
		{Red: 4, Green: 13, Blue: 5},
		{Red: 1, Green: 5},
	}, g.Draws)
	assert.False(t, g.Possible(Bag))
	assert.Equal(t, Set{Red: 20, Green: 13, Blue: 6}, g.Minimum())
	assert.Equal(t, 1560, g.Minimum().Power())
}

func TestParseGameErrors(t *testing.T) {
	for _, line := range []string{
		"Game 1 3 blue",
		"Round 1: 3 blue",
		"Game x: 3 blue",
		"Game 1: 3 purple",
		"Game 1: blue",
		"Game 1: -3 blue",
	} {
		_, err := ParseGame(line)
		assert.Error(t, err, line)
	}
}

func TestParseGamesLineNumbers(t *testing.T) {
	_, err := ParseGames("Game 1: 1 red\nGame 2: 1 pink\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}
