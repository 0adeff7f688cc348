package rangemap

import "fmt"

// Rule maps [Source, Source+Len) onto [Dest, Dest+Len).
type Rule struct {
	Dest   uint64
	Source uint64
	Len    uint64
}

// NewRule builds a rule, rejecting zero length.
func NewRule(dest, source, length uint64) (Rule, error) {
	if length == 0 {
		return Rule{}, fmt.Errorf("rule %d %d %d: %w", dest, source, length, ErrEmptySpan)
	}

	return Rule{Dest: dest, Source: source, Len: length}, nil
}

// Domain returns the source interval of the rule.
func (r Rule) Domain() Span {
	return Span{Start: r.Source, Len: r.Len}
}

// MapPoint translates x when it lies in the rule's domain.
func (r Rule) MapPoint(x uint64) (uint64, bool) {
	if !r.Domain().Contains(x) {
		return 0, false
	}

	return r.Dest + (x - r.Source), true
}

// Translate shifts a span lying inside the domain by the rule offset.
func (r Rule) Translate(s Span) Span {
	return Span{Start: r.Dest + (s.Start - r.Source), Len: s.Len}
}

// String renders the rule as "dest source length".
func (r Rule) String() string {
	return fmt.Sprintf("%d %d %d", r.Dest, r.Source, r.Len)
}

// Overlap is the partition of a span against one rule's domain.
// Inside pieces are still in source coordinates.
type Overlap struct {
	Inside  []Span
	Outside []Span
}

// Overlap partitions q into the pieces covered by the rule's domain and the
// pieces left outside it. No piece is ever empty, and together the pieces hold
// exactly the points of q.
func (r Rule) Overlap(q Span) Overlap {
	start, end := q.Start, q.Last()
	ruleStart, ruleEnd := r.Source, r.Domain().Last()

	switch {
	case start <= ruleStart && ruleStart <= end && end <= ruleEnd:
		// q runs into the domain from the left, or starts exactly on it.
		ov := Overlap{Inside: []Span{between(ruleStart, end)}}
		if start < ruleStart {
			ov.Outside = []Span{between(start, ruleStart-1)}
		}

		return ov

	case ruleStart <= start && end <= ruleEnd:
		return Overlap{Inside: []Span{q}}

	case start < ruleStart && ruleEnd < end:
		return Overlap{
			Inside: []Span{r.Domain()},
			Outside: []Span{
				between(start, ruleStart-1),
				between(ruleEnd+1, end),
			},
		}

	case start <= ruleEnd && ruleEnd < end:
		// start >= ruleStart here, the containing case is handled above.
		return Overlap{
			Inside:  []Span{between(start, ruleEnd)},
			Outside: []Span{between(ruleEnd+1, end)},
		}

	default:
		return Overlap{Outside: []Span{q}}
	}
}
