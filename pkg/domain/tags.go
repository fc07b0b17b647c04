package domain

import "slices"

// parseTag resolves s against a closed vocabulary.
func parseTag[T ~string](vocab []T, s string) (T, bool) {
	for _, t := range vocab {
		if string(t) == s {
			return t, true
		}
	}
	var zero T
	return zero, false
}

func cloneTags[T ~string](vocab []T) []T {
	return slices.Clone(vocab)
}
