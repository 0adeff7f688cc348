package rangemap

import "aoc-2023/internal/common"

// Pipeline applies its stages in order.
type Pipeline struct {
	Stages []Stage
}

// MapPoint folds x through every stage.
func (p Pipeline) MapPoint(x uint64) uint64 {
	for _, s := range p.Stages {
		x = s.MapPoint(x)
	}

	return x
}

// Trace returns x followed by its value after each stage.
func (p Pipeline) Trace(x uint64) []uint64 {
	out := make([]uint64, 0, len(p.Stages)+1)
	out = append(out, x)

	for _, s := range p.Stages {
		x = s.MapPoint(x)
		out = append(out, x)
	}

	return out
}

// MapSpan folds span through every stage. The number of spans may grow at
// each stage; nothing bounds it.
func (p Pipeline) MapSpan(span Span) []Span {
	current := []Span{span}

	for _, s := range p.Stages {
		var next []Span
		for _, c := range current {
			next = append(next, s.MapSpan(c)...)
		}

		current = next
	}

	return current
}

// MapSpans maps each span and concatenates the results.
func (p Pipeline) MapSpans(spans []Span) []Span {
	var out []Span
	for _, s := range spans {
		out = append(out, p.MapSpan(s)...)
	}

	return out
}

// MinPoint returns the smallest mapped value of xs. It reports false when xs
// is empty.
func MinPoint(p Pipeline, xs []uint64) (uint64, bool) {
	first, ok := common.First(xs)
	if !ok {
		return 0, false
	}

	lowest := p.MapPoint(first)
	for _, x := range xs[1:] {
		lowest = min(lowest, p.MapPoint(x))
	}

	return lowest, true
}

// MinStart returns the smallest start of all spans produced by mapping spans.
// It reports false when spans is empty.
func MinStart(p Pipeline, spans []Span) (uint64, bool) {
	out := p.MapSpans(spans)

	first, ok := common.First(out)
	if !ok {
		return 0, false
	}

	lowest := first.Start
	for _, s := range out[1:] {
		lowest = min(lowest, s.Start)
	}

	return lowest, true
}
