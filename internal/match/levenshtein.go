package match

// Levenshtein returns the minimum number of single-rune insertions, deletions
// or substitutions turning a into b.
//
// Only two rows of the distance table are kept, sized by the shorter input.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j, cb := range rb {
		curr[0] = j + 1

		for i, ca := range ra {
			sub := prev[i]
			if ca != cb {
				sub++
			}

			curr[i+1] = min(prev[i+1]+1, curr[i]+1, sub)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}
