package rx

import (
	"unicode/utf8"

	"rxfacade/engine"
)

// Matcher is a compiled pattern. All its methods are read-only and safe for concurrent use.
type Matcher struct {
	expr    string
	pattern engine.Pattern
}

// String returns the source pattern.
func (m *Matcher) String() string {
	return m.expr
}

// NumGroups returns the number of capture groups, not counting the whole match.
func (m *Matcher) NumGroups() int {
	return m.pattern.NumSubexp()
}

// GroupNames returns the names of capture groups 1..NumGroups(), in order. Unnamed groups have the name "".
func (m *Matcher) GroupNames() []string {
	names := m.pattern.SubexpNames()
	if len(names) == 0 {
		return []string{}
	}

	out := make([]string, len(names)-1)
	copy(out, names[1:])
	return out
}

// IsMatch reports whether the pattern matches anywhere in text. It stops at the first match found.
func (m *Matcher) IsMatch(text string) bool {
	return m.pattern.IsMatch(text)
}

// IsMatchFrom reports whether the pattern matches text when scanning starts at byte offset start.
// No match may begin before start, but assertions such as ^ and \b still see the whole text.
//
// start must be between 0 and len(text) inclusive and must not point at a UTF-8 continuation byte,
// otherwise ErrInvalidOffset is returned.
func (m *Matcher) IsMatchFrom(text string, start int) (bool, error) {
	if start < 0 || start > len(text) {
		return false, ErrInvalidOffset
	}
	if start < len(text) && !utf8.RuneStart(text[start]) {
		return false, ErrInvalidOffset
	}
	return m.pattern.IsMatchAt(text, start), nil
}

// FindFirst returns the text of the leftmost match. ok is false if there is no match.
func (m *Matcher) FindFirst(text string) (match string, ok bool) {
	span, ok := m.FindFirstSpan(text)
	if !ok {
		return "", false
	}
	return text[span.Start:span.End], true
}

// FindFirstSpan returns the location of the leftmost match. ok is false if there is no match.
func (m *Matcher) FindFirstSpan(text string) (span Span, ok bool) {
	loc := m.pattern.FindIndex(text)
	if loc == nil {
		return Span{}, false
	}
	return Span{Start: loc[0], End: loc[1]}, true
}

// FindAll returns the text of every match, in order. Matches never overlap: each one is the leftmost match after the end of the previous one.
// The result is empty, not nil, when there are no matches.
func (m *Matcher) FindAll(text string) []string {
	matches := []string{}
	m.pattern.FindAllSubmatchIndex(text, func(loc []int) bool {
		matches = append(matches, text[loc[0]:loc[1]])
		return true
	})
	return matches
}

// MatchSpans returns the location of every match, in the same order as FindAll.
func (m *Matcher) MatchSpans(text string) []Span {
	spans := []Span{}
	m.pattern.FindAllSubmatchIndex(text, func(loc []int) bool {
		spans = append(spans, Span{Start: loc[0], End: loc[1]})
		return true
	})
	return spans
}

// Captures returns the capture groups of the leftmost match. ok is false if there is no match.
func (m *Matcher) Captures(text string) (caps CaptureSet, ok bool) {
	loc := m.pattern.FindSubmatchIndex(text)
	if loc == nil {
		return nil, false
	}
	return normalizeCaptures(text, loc), true
}

// AllCaptures returns the capture groups of every match, one CaptureSet per match in the same order as FindAll.
// The result is empty, not nil, when there are no matches.
func (m *Matcher) AllCaptures(text string) []CaptureSet {
	all := []CaptureSet{}
	m.pattern.FindAllSubmatchIndex(text, func(loc []int) bool {
		all = append(all, normalizeCaptures(text, loc))
		return true
	})
	return all
}
