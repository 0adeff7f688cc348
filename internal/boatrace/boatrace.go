// Package boatrace counts ways to win toy boat races.
//
// Holding the button for h of a race's t milliseconds travels h*(t-h). A
// hold wins when that beats the record distance. Part 2 reads each line as a
// single number with the spaces removed.
package boatrace

import (
	"fmt"
	"math/bits"
	"strings"

	"aoc-2023/internal/common"
	"aoc-2023/internal/puzzle"
)

// Race is one time limit with its record distance.
type Race struct {
	Time   uint64
	Record uint64
}

// Distance travelled after holding the button for hold milliseconds. The
// product wraps for races longer than 2^33 milliseconds; Ways does not use it.
func (r Race) Distance(hold uint64) uint64 {
	if hold >= r.Time {
		return 0
	}

	return hold * (r.Time - hold)
}

// beats reports whether holding for hold milliseconds beats the record,
// computing the distance in 128 bits.
func (r Race) beats(hold uint64) bool {
	if hold >= r.Time {
		return false
	}

	hi, lo := bits.Mul64(hold, r.Time-hold)

	return hi != 0 || lo > r.Record
}

// Ways counts the holds that beat the record.
//
// Winning holds lie strictly between the roots of h^2 - t*h + d = 0. For
// times below 2^32 the first one is estimated with an integer square root,
// longer races binary search the rising half. Either estimate is then nudged
// so that the first hold wins and the one before it does not.
func (r Race) Ways() uint64 {
	t, d := r.Time, r.Record

	mid := t / 2
	if !r.beats(mid) {
		return 0
	}

	var first uint64
	if t < 1<<32 {
		// mid wins, so 4d < t^2 and neither side overflows.
		first = (t - isqrt(t*t-4*d)) / 2
	} else {
		lo, hi := uint64(0), mid
		for lo < hi {
			m := lo + (hi-lo)/2
			if r.beats(m) {
				hi = m
			} else {
				lo = m + 1
			}
		}

		first = lo
	}

	for first > 0 && r.beats(first-1) {
		first--
	}
	for !r.beats(first) {
		first++
	}

	// symmetric around t/2
	return t - 2*first + 1
}

func isqrt(n uint64) uint64 {
	if n < 2 {
		return n
	}

	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}

	return x
}

// Parse reads the "Time:" and "Distance:" lines as separate races.
func Parse(input string) ([]Race, error) {
	times, dists, err := split(input)
	if err != nil {
		return nil, err
	}

	ts, err := common.ParseInts[uint64](times)
	if err != nil {
		return nil, fmt.Errorf("times: %w", err)
	}

	ds, err := common.ParseInts[uint64](dists)
	if err != nil {
		return nil, fmt.Errorf("distances: %w", err)
	}

	if len(ts) != len(ds) {
		return nil, fmt.Errorf("%d times but %d distances", len(ts), len(ds))
	}

	races := make([]Race, len(ts))
	for i := range ts {
		races[i] = Race{Time: ts[i], Record: ds[i]}
	}

	return races, nil
}

// ParseJoined reads both lines as one race, ignoring spaces between digits.
func ParseJoined(input string) (Race, error) {
	times, dists, err := split(input)
	if err != nil {
		return Race{}, err
	}

	t, err := common.ParseInt[uint64](strings.Join(strings.Fields(times), ""))
	if err != nil {
		return Race{}, fmt.Errorf("time: %w", err)
	}

	d, err := common.ParseInt[uint64](strings.Join(strings.Fields(dists), ""))
	if err != nil {
		return Race{}, fmt.Errorf("distance: %w", err)
	}

	return Race{Time: t, Record: d}, nil
}

func split(input string) (string, string, error) {
	var times, dists string
	var haveTimes, haveDists bool

	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "Time:"); ok {
			times, haveTimes = rest, true
		} else if rest, ok := strings.CutPrefix(line, "Distance:"); ok {
			dists, haveDists = rest, true
		}
	}

	if !haveTimes {
		return "", "", fmt.Errorf("missing 'Time:' line")
	}
	if !haveDists {
		return "", "", fmt.Errorf("missing 'Distance:' line")
	}

	return times, dists, nil
}

// Part1 multiplies the ways to win each race.
func Part1(input string) (uint64, error) {
	races, err := Parse(input)
	if err != nil {
		return 0, err
	}

	product := uint64(1)
	for _, r := range races {
		product *= r.Ways()
	}

	return product, nil
}

// Part2 counts the ways to win the joined race.
func Part2(input string) (uint64, error) {
	r, err := ParseJoined(input)
	if err != nil {
		return 0, err
	}

	return r.Ways(), nil
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
