package wasteland

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleRL = `RL

AAA = (BBB, CCC)
BBB = (DDD, EEE)
CCC = (ZZZ, GGG)
DDD = (DDD, DDD)
EEE = (EEE, EEE)
GGG = (GGG, GGG)
ZZZ = (ZZZ, ZZZ)
`

const exampleLLR = `LLR

AAA = (BBB, BBB)
BBB = (AAA, ZZZ)
ZZZ = (ZZZ, ZZZ)
`

const exampleGhosts = `LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)
`

func TestPart1(t *testing.T) {
	got, err := Part1(exampleRL)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	got, err = Part1(exampleLLR)
	require.NoError(t, err)
	assert.Equal(t, 6, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(exampleGhosts)
	require.NoError(t, err)
	assert.Equal(t, int64(6), got)
}

func TestSolve(t *testing.T) {
	got, err := Solve(exampleLLR)
	require.NoError(t, err)

	assert.Equal(t, int64(6), got.Part1)
	assert.Equal(t, int64(6), got.Part2)
	assert.True(t, got.HasPart2)

	got, err = Solve(exampleGhosts)
	require.NoError(t, err)

	assert.False(t, got.HasPart1)
	assert.Equal(t, int64(6), got.Part2)

	_, err = Solve("L\n\nAAA = (BBB, BBB)\n")
	require.ErrorIs(t, err, ErrUnknownNode)
}

func TestParse(t *testing.T) {
	n, err := Parse(exampleLLR)
	require.NoError(t, err)

	assert.Equal(t, "LLR", n.Instructions)
	assert.Equal(t, []string{"AAA", "BBB", "ZZZ"}, n.Names())
	assert.Equal(t, Node{Left: "AAA", Right: "ZZZ"}, n.Nodes["BBB"])
}

func TestParseWithoutTrailingNewline(t *testing.T) {
	n, err := Parse("L\n\nAAA = (ZZZ, ZZZ)\nZZZ = (ZZZ, ZZZ)")
	require.NoError(t, err)
	assert.Len(t, n.Nodes, 2)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bad instruction", "LXR\n\nAAA = (BBB, CCC)\n"},
		{"missing paren", "LR\n\nAAA = BBB, CCC)\n"},
		{"missing comma", "LR\n\nAAA = (BBB CCC)\n"},
		{"duplicate node", "LR\n\nAAA = (BBB, CCC)\nAAA = (BBB, CCC)\n"},
		{"two nodes on one line", "LR\n\nAAA = (BBB, CCC) BBB = (AAA, AAA)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestStepsErrors(t *testing.T) {
	n, err := Parse("L\n\nAAA = (BBB, BBB)\n")
	require.NoError(t, err)

	_, err = n.Steps("AAA", func(s string) bool { return s == "ZZZ" })
	require.ErrorIs(t, err, ErrUnknownNode)

	n, err = Parse("LR\n\nAAA = (BBB, AAA)\nBBB = (AAA, BBB)\nZZZ = (ZZZ, ZZZ)\n")
	require.NoError(t, err)

	_, err = n.Steps("AAA", func(s string) bool { return s == "ZZZ" })
	require.ErrorIs(t, err, ErrUnreachable)

	_, err = n.Ghosts()
	require.ErrorIs(t, err, ErrUnreachable)

	n, err = Parse("L\n\nBBB = (BBB, BBB)\n")
	require.NoError(t, err)

	_, err = n.Ghosts()
	require.ErrorIs(t, err, ErrNoStart)
}
