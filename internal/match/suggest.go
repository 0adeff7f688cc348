package match

import (
	"sort"
	"strings"
	"unicode"
)

// Normalize lower-cases s and drops spaces, '-' and '_'.
func Normalize(s string) string {
	var b strings.Builder

	for _, r := range s {
		if r == '-' || r == '_' || unicode.IsSpace(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

type scored struct {
	name string
	dist int
}

// Suggest returns the candidates whose normalized form is within maxDistance
// edits of the normalized input, closest first and then by name. An exact
// match returns only that candidate.
func Suggest(input string, candidates []string, maxDistance int) []string {
	norm := Normalize(input)

	var hits []scored

	for _, c := range candidates {
		d := Levenshtein(norm, Normalize(c))
		if d == 0 {
			return []string{c}
		}

		if d <= maxDistance {
			hits = append(hits, scored{name: c, dist: d})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].dist != hits[j].dist {
			return hits[i].dist < hits[j].dist
		}

		return hits[i].name < hits[j].name
	})

	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.name)
	}

	return out
}
