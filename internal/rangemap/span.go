package rangemap

import (
	"errors"
	"fmt"
)

// ErrEmptySpan is returned when a span or rule would have zero length.
var ErrEmptySpan = errors.New("span length must be at least 1")

// Span is the half-open interval [Start, Start+Len). Len is at least 1.
type Span struct {
	Start uint64
	Len   uint64
}

// NewSpan builds a span, rejecting zero length.
func NewSpan(start, length uint64) (Span, error) {
	if length == 0 {
		return Span{}, fmt.Errorf("span at %d: %w", start, ErrEmptySpan)
	}

	return Span{Start: start, Len: length}, nil
}

// Point returns the single-point span holding x.
func Point(x uint64) Span {
	return Span{Start: x, Len: 1}
}

// between returns the span covering first..last, both inclusive.
func between(first, last uint64) Span {
	return Span{Start: first, Len: last - first + 1}
}

// End returns the first value past the span.
func (s Span) End() uint64 {
	return s.Start + s.Len
}

// Last returns the last value inside the span.
func (s Span) Last() uint64 {
	return s.Start + s.Len - 1
}

// Contains reports whether x lies inside the span.
func (s Span) Contains(x uint64) bool {
	return s.Start <= x && x-s.Start < s.Len
}

// Intersect returns the shared part of two spans.
func (s Span) Intersect(o Span) (Span, bool) {
	first := max(s.Start, o.Start)
	last := min(s.Last(), o.Last())

	if first > last {
		return Span{}, false
	}

	return between(first, last), true
}

func (s Span) String() string {
	return fmt.Sprintf("[%d, %d)", s.Start, s.End())
}

// Count returns the total number of points held by spans.
func Count(spans []Span) uint64 {
	var n uint64
	for _, s := range spans {
		n += s.Len
	}

	return n
}
