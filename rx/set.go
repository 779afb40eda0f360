package rx

import (
	"sort"

	"rxfacade/engine"
)

// MatcherSet is a set of patterns matched together. It only tells which patterns matched: locations, match text and capture groups are not available.
// Callers needing those should compile the individual pattern with Compile once they know it matched.
type MatcherSet struct {
	exprs []string
	set   engine.PatternSet
}

// Len returns the number of patterns in the set.
func (s *MatcherSet) Len() int {
	return len(s.exprs)
}

// Patterns returns the source patterns, in the order they were given.
func (s *MatcherSet) Patterns() []string {
	out := make([]string, len(s.exprs))
	copy(out, s.exprs)
	return out
}

// IsMatch reports whether any pattern in the set matches text. It may stop scanning as soon as one match is confirmed.
func (s *MatcherSet) IsMatch(text string) bool {
	if len(s.exprs) == 0 {
		return false
	}
	return s.set.IsMatch(text)
}

// MatchingIndices returns the indices of every pattern that matches text at least once, in ascending order.
// The result is empty, not nil, when no pattern matches.
func (s *MatcherSet) MatchingIndices(text string) []int {
	if len(s.exprs) == 0 {
		return []int{}
	}

	ids := s.set.Matches(text)
	out := make([]int, len(ids))
	copy(out, ids)
	sort.Ints(out)
	return out
}
