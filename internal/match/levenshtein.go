package match

import (
	"github.com/hbollon/go-edlib"
)

// Levenshtein computes the edit distance between two strings.
func Levenshtein(a, b string) int {
	return edlib.LevenshteinDistance(a, b)
}

// LevenshteinNormalized computes a similarity score between 0 and 1.
// The score is: 1 - (distance / max(len(a), len(b))).
func LevenshteinNormalized(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)

	maxLen := max(len(ra), len(rb))
	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(a, b))/float64(maxLen)
}

// JaroWinkler returns the Jaro-Winkler similarity of two strings (0-1).
func JaroWinkler(a, b string) float64 {
	if a == b {
		return 1.0
	}

	if a == "" || b == "" {
		return 0.0
	}

	score, err := edlib.StringsSimilarity(a, b, edlib.JaroWinkler)
	if err != nil {
		return 0.0
	}

	return float64(score)
}

// Similarity scores two member names after normalization. It is the best of
// the Levenshtein and Jaro-Winkler scores over the plain and the
// accessor-stripped forms.
func Similarity(a, b string) float64 {
	best := 0.0

	for _, norm := range []func(string) string{NormalizeMember, NormalizeMemberStripped} {
		na, nb := norm(a), norm(b)
		best = max(best, LevenshteinNormalized(na, nb), JaroWinkler(na, nb))
	}

	return best
}
