// Package cubegame scores games of cubes drawn from a bag.
//
// Each line reads "Game 12: 3 blue, 4 red; 1 red, 2 green". Part 1 sums the
// IDs of games possible with 12 red, 13 green and 14 blue cubes. Part 2 sums
// the power of the fewest cubes that make each game possible.
package cubegame

import (
	"fmt"
	"strconv"
	"strings"

	"aoc-2023/internal/puzzle"
)

// Set counts cubes by color.
type Set struct {
	Red, Green, Blue int
}

// Bag is the load Part 1 checks games against.
var Bag = Set{Red: 12, Green: 13, Blue: 14}

// Fits reports whether s can be drawn from bag.
func (s Set) Fits(bag Set) bool {
	return s.Red <= bag.Red && s.Green <= bag.Green && s.Blue <= bag.Blue
}

// Power is the product of the three counts.
func (s Set) Power() int {
	return s.Red * s.Green * s.Blue
}

// Game is one line of input.
type Game struct {
	ID    int
	Draws []Set
}

// Minimum returns the fewest cubes of each color that allow every draw.
func (g Game) Minimum() Set {
	var m Set
	for _, d := range g.Draws {
		m.Red = max(m.Red, d.Red)
		m.Green = max(m.Green, d.Green)
		m.Blue = max(m.Blue, d.Blue)
	}

	return m
}

// Possible reports whether every draw fits bag.
func (g Game) Possible(bag Set) bool {
	for _, d := range g.Draws {
		if !d.Fits(bag) {
			return false
		}
	}

	return true
}

// ParseGame parses one line.
func ParseGame(line string) (Game, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, fmt.Errorf("missing ':' in %q", line)
	}

	idText, ok := strings.CutPrefix(strings.TrimSpace(head), "Game ")
	if !ok {
		return Game{}, fmt.Errorf("missing 'Game' prefix in %q", line)
	}

	id, err := strconv.Atoi(strings.TrimSpace(idText))
	if err != nil {
		return Game{}, fmt.Errorf("invalid game id %q: %w", idText, err)
	}

	g := Game{ID: id}

	for _, rawDraw := range strings.Split(body, ";") {
		d, err := parseDraw(rawDraw)
		if err != nil {
			return Game{}, fmt.Errorf("game %d: %w", id, err)
		}

		g.Draws = append(g.Draws, d)
	}

	return g, nil
}

func parseDraw(raw string) (Set, error) {
	var s Set

	for _, part := range strings.Split(raw, ",") {
		fields := strings.Fields(part)
		if len(fields) != 2 {
			return s, fmt.Errorf("invalid cube count %q", strings.TrimSpace(part))
		}

		n, err := strconv.Atoi(fields[0])
		if err != nil || n < 0 {
			return s, fmt.Errorf("invalid cube count %q", strings.TrimSpace(part))
		}

		switch fields[1] {
		case "red":
			s.Red += n
		case "green":
			s.Green += n
		case "blue":
			s.Blue += n
		default:
			return s, fmt.Errorf("unknown color %q", fields[1])
		}
	}

	return s, nil
}

// ParseGames parses every non-blank line.
func ParseGames(input string) ([]Game, error) {
	var games []Game

	for i, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		g, err := ParseGame(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		games = append(games, g)
	}

	return games, nil
}

// Part1 sums the IDs of games possible with Bag.
func Part1(input string) (int, error) {
	games, err := ParseGames(input)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, g := range games {
		if g.Possible(Bag) {
			total += g.ID
		}
	}

	return total, nil
}

// Part2 sums the power of each game's minimum set.
func Part2(input string) (int, error) {
	games, err := ParseGames(input)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, g := range games {
		total += g.Minimum().Power()
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
