package match

import (
	"slices"
	"strings"
)

// DefaultMinScore is the lowest similarity worth suggesting.
const DefaultMinScore = 0.5

// Candidate is a control identifier scored against a property name.
type Candidate struct {
	ControlID string
	// Tail is the part of ControlID compared with the name.
	Tail  string
	Score float64
}

// CandidateList is a list of candidates, best first.
type CandidateList []Candidate

// Tail returns the segment of id after its last underscore, or id itself
// when it has none.
func Tail(id string) string {
	if i := strings.LastIndexByte(id, '_'); i >= 0 {
		return id[i+1:]
	}

	return id
}

// RankControls scores every identifier in ids against name. Empty
// identifiers are ignored. The result is sorted by score, then by
// identifier.
func RankControls(name string, ids []string) CandidateList {
	var c CandidateList

	for _, id := range ids {
		if id == "" {
			continue
		}

		tail := Tail(id)
		c = append(c, Candidate{
			ControlID: id,
			Tail:      tail,
			Score:     NormalizedLevenshteinScore(name, tail),
		})
	}

	slices.SortStableFunc(c, func(x, y Candidate) int {
		switch {
		case x.Score > y.Score:
			return -1
		case x.Score < y.Score:
			return 1
		default:
			return strings.Compare(x.ControlID, y.ControlID)
		}
	})

	return c
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// AboveThreshold returns candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// IDs returns the control identifiers of c.
func (c CandidateList) IDs() []string {
	ids := make([]string, len(c))
	for i, cand := range c {
		ids[i] = cand.ControlID
	}

	return ids
}

// Suggest returns up to limit identifiers from ids that look like a
// misspelled binding for name.
func Suggest(name string, ids []string, limit int) []string {
	return RankControls(name, ids).AboveThreshold(DefaultMinScore).Top(limit).IDs()
}
