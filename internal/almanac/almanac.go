package almanac

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"aoc-2023/internal/common"
	"aoc-2023/internal/puzzle"
	"aoc-2023/internal/rangemap"
)

var (
	// ErrOddSeedCount is returned when seeds cannot be read as (start, length) pairs.
	ErrOddSeedCount = errors.New("seed list has an odd number of values")
	// ErrNoSeeds is returned when an answer is requested for an almanac without seeds.
	ErrNoSeeds = errors.New("almanac has no seeds")
)

// Almanac is a parsed puzzle input.
type Almanac struct {
	Seeds    []uint64
	Pipeline rangemap.Pipeline
}

// SeedSpans reads the seeds as (start, length) pairs.
func (a *Almanac) SeedSpans() ([]rangemap.Span, error) {
	pairs, ok := common.Pairs(a.Seeds)
	if !ok {
		return nil, fmt.Errorf("%w (%d)", ErrOddSeedCount, len(a.Seeds))
	}

	spans := make([]rangemap.Span, 0, len(pairs))
	for _, p := range pairs {
		s, err := rangemap.NewSpan(p[0], p[1])
		if err != nil {
			return nil, fmt.Errorf("seed range: %w", err)
		}

		spans = append(spans, s)
	}

	return spans, nil
}

// StageNames returns the name of every stage in order.
func (a *Almanac) StageNames() []string {
	names := make([]string, 0, len(a.Pipeline.Stages))
	for _, s := range a.Pipeline.Stages {
		names = append(names, s.Name)
	}

	return names
}

// Part1 returns the lowest location of any single seed.
func Part1(a *Almanac) (uint64, error) {
	lowest, ok := rangemap.MinPoint(a.Pipeline, a.Seeds)
	if !ok {
		return 0, ErrNoSeeds
	}

	return lowest, nil
}

// Part2 returns the lowest location of any seed in the seed ranges.
func Part2(a *Almanac) (uint64, error) {
	spans, err := a.SeedSpans()
	if err != nil {
		return 0, err
	}

	lowest, ok := rangemap.MinStart(a.Pipeline, spans)
	if !ok {
		return 0, ErrNoSeeds
	}

	return lowest, nil
}

// Solve parses input and computes both answers. Part 2 is left out when the
// seed list cannot be paired.
func Solve(input string) (puzzle.Answer, error) {
	a, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	p1, err := Part1(a)
	if err != nil {
		return puzzle.Answer{}, err
	}

	first, err := toAnswer(p1)
	if err != nil {
		return puzzle.Answer{}, err
	}

	p2, err := Part2(a)
	if errors.Is(err, ErrOddSeedCount) {
		return puzzle.Only(first), nil
	}

	if err != nil {
		return puzzle.Answer{}, err
	}

	second, err := toAnswer(p2)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Both(first, second), nil
}

func toAnswer(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, fmt.Errorf("answer %d does not fit in int64", v)
	}

	return int64(v), nil
}

// LoadFile reads an almanac from path. Files ending in .yaml or .yml are read
// as YAML, anything else as puzzle text.
func LoadFile(path string) (*Almanac, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read almanac %s: %w", path, err)
	}

	var a *Almanac

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		a, err = ParseYAML(data)
	default:
		a, err = Parse(string(data))
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return a, nil
}
