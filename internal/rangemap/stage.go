package rangemap

// Stage is one layer of remapping. Rule order only matters when domains overlap.
type Stage struct {
	Name  string
	Rules []Rule
}

// MapPoint returns x translated by the first rule covering it, or x itself.
func (s Stage) MapPoint(x uint64) uint64 {
	for _, r := range s.Rules {
		if y, ok := r.MapPoint(x); ok {
			return y
		}
	}

	return x
}

// MapSpan maps every point of span through the stage and returns the result
// as spans. Pieces covered by a rule are relabeled, pieces covered by no rule
// are returned unchanged after the relabeled ones.
func (s Stage) MapSpan(span Span) []Span {
	var resolved []Span

	unresolved := []Span{span}

	for _, r := range s.Rules {
		if len(unresolved) == 0 {
			break
		}

		var next []Span

		for _, u := range unresolved {
			ov := r.Overlap(u)
			for _, in := range ov.Inside {
				resolved = append(resolved, r.Translate(in))
			}

			next = append(next, ov.Outside...)
		}

		unresolved = next
	}

	return append(resolved, unresolved...)
}

// Conflict names two rules of a stage whose source domains intersect.
type Conflict struct {
	A, B   int
	Shared Span
}

// Conflicts lists every pair of rules with intersecting domains, ordered by
// the first rule index then the second.
func (s Stage) Conflicts() []Conflict {
	var out []Conflict

	for i := range s.Rules {
		for j := i + 1; j < len(s.Rules); j++ {
			shared, ok := s.Rules[i].Domain().Intersect(s.Rules[j].Domain())
			if ok {
				out = append(out, Conflict{A: i, B: j, Shared: shared})
			}
		}
	}

	return out
}
