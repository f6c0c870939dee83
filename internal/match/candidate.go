package match

import (
	"sort"
)

// DefaultMinScore is the lowest similarity Suggest reports.
const DefaultMinScore = 0.7

// Candidate is a known member name scored against an unresolved one.
type Candidate struct {
	Name  string
	Score float64 // Similarity (0-1)
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Less implements sort.Interface (descending by score, then by name).
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Names returns the candidate names in order.
func (c CandidateList) Names() []string {
	names := make([]string, len(c))
	for i := range c {
		names[i] = c[i].Name
	}

	return names
}

// Top returns at most n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n < 0 || n >= len(c) {
		return c
	}

	return c[:n]
}

// AboveThreshold returns candidates with a score of at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// RankCandidates scores every distinct name against symbol and returns them
// sorted by score (descending). The symbol itself is not a candidate.
func RankCandidates(symbol string, names []string) CandidateList {
	seen := make(map[string]struct{}, len(names))

	var candidates CandidateList

	for _, name := range names {
		if name == symbol {
			continue
		}

		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}

		candidates = append(candidates, Candidate{Name: name, Score: Similarity(symbol, name)})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns up to limit names similar to symbol, best first.
func Suggest(symbol string, names []string, limit int) []string {
	return RankCandidates(symbol, names).AboveThreshold(DefaultMinScore).Top(limit).Names()
}
