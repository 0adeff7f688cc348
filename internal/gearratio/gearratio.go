// Package gearratio reads part numbers off an engine schematic.
//
// The schematic is a grid of digits, symbols and '.' for empty cells. A
// number is a part number when any of its cells touches a symbol, diagonals
// included. A gear is a '*' touching exactly two part numbers.
package gearratio

import (
	"strings"

	"aoc-2023/internal/puzzle"
)

// Point is a grid cell as (row, column).
type Point struct {
	Row, Col int
}

// Number is a run of digits on one row.
type Number struct {
	Value int
	Start Point
	Len   int
}

// Schematic is a parsed grid.
type Schematic struct {
	rows    []string
	Numbers []Number
}

// Parse reads the grid; blank lines are dropped.
func Parse(input string) Schematic {
	var s Schematic

	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		s.rows = append(s.rows, line)
	}

	for r, row := range s.rows {
		for c := 0; c < len(row); {
			if !isDigit(row[c]) {
				c++
				continue
			}

			start, value := c, 0
			for c < len(row) && isDigit(row[c]) {
				value = value*10 + int(row[c]-'0')
				c++
			}

			s.Numbers = append(s.Numbers, Number{Value: value, Start: Point{Row: r, Col: start}, Len: c - start})
		}
	}

	return s
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsSymbol reports whether c is neither a digit nor '.'.
func IsSymbol(c byte) bool {
	return !isDigit(c) && c != '.'
}

// at returns the cell at p, or '.' outside the grid.
func (s Schematic) at(p Point) byte {
	if p.Row < 0 || p.Row >= len(s.rows) || p.Col < 0 || p.Col >= len(s.rows[p.Row]) {
		return '.'
	}

	return s.rows[p.Row][p.Col]
}

// Neighbors returns the cells around n, off-grid cells included.
func (n Number) Neighbors() []Point {
	r, first, last := n.Start.Row, n.Start.Col-1, n.Start.Col+n.Len

	out := make([]Point, 0, 2*(n.Len+2)+2)
	for c := first; c <= last; c++ {
		out = append(out, Point{Row: r - 1, Col: c}, Point{Row: r + 1, Col: c})
	}

	return append(out, Point{Row: r, Col: first}, Point{Row: r, Col: last})
}

// IsPart reports whether n touches a symbol.
func (s Schematic) IsPart(n Number) bool {
	for _, p := range n.Neighbors() {
		if IsSymbol(s.at(p)) {
			return true
		}
	}

	return false
}

// Gears returns, for every '*' touching at least one number, the numbers it
// touches.
func (s Schematic) Gears() map[Point][]int {
	gears := make(map[Point][]int)

	for _, n := range s.Numbers {
		for _, p := range n.Neighbors() {
			if s.at(p) == '*' {
				gears[p] = append(gears[p], n.Value)
			}
		}
	}

	return gears
}

// Part1 sums all part numbers.
func Part1(input string) (int, error) {
	s := Parse(input)

	total := 0
	for _, n := range s.Numbers {
		if s.IsPart(n) {
			total += n.Value
		}
	}

	return total, nil
}

// Part2 sums the gear ratios.
func Part2(input string) (int, error) {
	total := 0
	for _, nums := range Parse(input).Gears() {
		if len(nums) == 2 {
			total += nums[0] * nums[1]
		}
	}

	return total, nil
}

// Solve computes both parts.
func Solve(input string) (puzzle.Answer, error) {
	p1, _ := Part1(input)
	p2, _ := Part2(input)

	return puzzle.Both(int64(p1), int64(p2)), nil
}
