package puzzle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownDay is returned by ParseDay for names that are not a known day.
var ErrUnknownDay = errors.New("unknown day")

// Day identifies one puzzle.
type Day int

const (
	Day1 Day = iota + 1
	Day2
	Day3
	Day4
	Day5
	Day6
	Day7
	Day8
	Day9
)

var titles = map[Day]string{
	Day1: "Trebuchet?!",
	Day2: "Cube Conundrum",
	Day3: "Gear Ratios",
	Day4: "Scratchcards",
	Day5: "If You Give A Seed A Fertilizer",
	Day6: "Wait For It",
	Day7: "Camel Cards",
	Day8: "Haunted Wasteland",
	Day9: "Mirage Maintenance",
}

// All returns every day in order.
func All() []Day {
	return []Day{Day1, Day2, Day3, Day4, Day5, Day6, Day7, Day8, Day9}
}

// Valid reports whether d is a known day.
func (d Day) Valid() bool {
	return d >= Day1 && d <= Day9
}

// String returns the snake-case name, e.g. "day5".
func (d Day) String() string {
	return "day" + strconv.Itoa(int(d))
}

// Title returns the puzzle title, or "" for unknown days.
func (d Day) Title() string {
	return titles[d]
}

// Names returns the String form of every day.
func Names() []string {
	days := All()

	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, d.String())
	}

	return out
}

// ParseDay accepts "5", "day5" and "DAY5".
func ParseDay(s string) (Day, error) {
	raw := strings.ToLower(strings.TrimSpace(s))
	raw = strings.TrimPrefix(raw, "day")

	n, err := strconv.Atoi(raw)
	if err != nil || !Day(n).Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDay, s)
	}

	return Day(n), nil
}
