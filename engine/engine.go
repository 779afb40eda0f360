package engine

// Engine is an interface to a regex engine that the matcher facade depends on, such as Go's regexp, RE2 or Hyperscan.
type Engine interface {
	Compile(pattern string) (p Pattern, err error)
	CompileSet(patterns []string) (s PatternSet, err error)
}

// Pattern is a single compiled regex. Implementations must be immutable after compilation and safe for concurrent use.
//
// Locations follow the Go regexp convention: loc[2*i:2*i+2] holds the byte offsets of group i, and -1 marks a group that did not participate in the match.
type Pattern interface {
	IsMatch(text string) bool
	IsMatchAt(text string, at int) bool
	FindIndex(text string) (loc []int)
	FindSubmatchIndex(text string) (loc []int)

	// FindAllSubmatchIndex delivers every non-overlapping leftmost-first match. All multi-match queries are answered from it, so they always agree on the matches.
	FindAllSubmatchIndex(text string, handler MatchHandler)

	NumSubexp() int
	SubexpNames() []string
}

// PatternSet is a collection of compiled regexes that are scanned for at once. It can only tell which patterns matched, not where.
type PatternSet interface {
	IsMatch(text string) bool
	Matches(text string) (ids []int)
	Len() int
}

// MatchHandler is called for every match, in left-to-right order. Returning false stops the iteration.
type MatchHandler func(loc []int) bool
