package solver

// FilterAnswers returns the candidates consistent with state, in their
// original order. The input slice is not modified.
func FilterAnswers(state State, candidates []Word) []Word {
	out := make([]Word, 0, len(candidates))
	for _, w := range candidates {
		if state.Matches(w) {
			out = append(out, w)
		}
	}
	return out
}

// CountMatches is FilterAnswers without the allocation.
func CountMatches(state State, candidates []Word) int {
	n := 0
	for _, w := range candidates {
		if state.Matches(w) {
			n++
		}
	}
	return n
}
