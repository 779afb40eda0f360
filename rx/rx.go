// Package rx is a facade over compiled regular expressions.
//
// A pattern is compiled once into a Matcher, which can then be queried any number of times for
// match existence, match text, capture groups and match positions. A MatcherSet compiles many
// patterns together and only answers which of them matched.
//
// Matchers and MatcherSets are immutable once compiled. They hold no mutable state, so a single
// instance may be shared by any number of goroutines without synchronization.
//
// Matching semantics are those of the engine the Factory was created with. The default engine
// uses Go's regexp, whose search time is linear in the input length for every pattern.
package rx

// Span is the location of one match. Both offsets are byte offsets into the searched text, and text[Start:End] is the matched text.
type Span struct {
	Start int
	End   int
}

// Group is the text captured by one capture group. Matched is false when the group did not participate in the match, for example when it sits in an alternation branch that was not taken.
type Group struct {
	Text    string
	Matched bool
}

// CaptureSet holds the capture groups of one match. It never contains the whole match: entry i is capture group i+1 of the pattern.
type CaptureSet []Group

// Strings returns the captured texts, using "" for groups that did not participate.
func (c CaptureSet) Strings() []string {
	ss := make([]string, len(c))
	for i, g := range c {
		ss[i] = g.Text
	}
	return ss
}
