package logging

import (
	"fmt"
	"io"
	"strings"

	"rxfacade/rx"

	"github.com/rs/zerolog"
)

// ResultsLogger reports the outcome of matcher queries.
type ResultsLogger interface {
	IsMatch(op string, pattern string, text string, matched bool)
	Find(pattern string, text string, match string, found bool)
	FindAll(pattern string, text string, matches []string)
	Spans(pattern string, text string, spans []rx.Span)
	Captures(op string, pattern string, text string, all []rx.CaptureSet)
	SetMatches(patterns []string, text string, ids []int)
}

// NewJSONResultsLogger creates a ResultsLogger that writes one JSON object per result to w.
func NewJSONResultsLogger(w io.Writer) ResultsLogger {
	return &jsonResultsLogger{logger: zerolog.New(w)}
}

type jsonResultsLogger struct {
	logger zerolog.Logger
}

func (l *jsonResultsLogger) IsMatch(op string, pattern string, text string, matched bool) {
	l.logger.Log().Str("operation", op).Str("pattern", pattern).Str("input", text).Bool("matched", matched).Msg("")
}

func (l *jsonResultsLogger) Find(pattern string, text string, match string, found bool) {
	e := l.logger.Log().Str("operation", "find").Str("pattern", pattern).Str("input", text)
	if found {
		e = e.Str("match", match)
	} else {
		e = e.Interface("match", nil)
	}
	e.Msg("")
}

func (l *jsonResultsLogger) FindAll(pattern string, text string, matches []string) {
	l.logger.Log().Str("operation", "find-all").Str("pattern", pattern).Str("input", text).Strs("matches", matches).Msg("")
}

func (l *jsonResultsLogger) Spans(pattern string, text string, spans []rx.Span) {
	pairs := make([][2]int, len(spans))
	for i, s := range spans {
		pairs[i] = [2]int{s.Start, s.End}
	}
	l.logger.Log().Str("operation", "spans").Str("pattern", pattern).Str("input", text).Interface("spans", pairs).Msg("")
}

func (l *jsonResultsLogger) Captures(op string, pattern string, text string, all []rx.CaptureSet) {
	groups := make([][]*string, len(all))
	for i, caps := range all {
		groups[i] = optionalStrings(caps)
	}
	l.logger.Log().Str("operation", op).Str("pattern", pattern).Str("input", text).Interface("captures", groups).Msg("")
}

func (l *jsonResultsLogger) SetMatches(patterns []string, text string, ids []int) {
	l.logger.Log().Str("operation", "set").Strs("patterns", patterns).Str("input", text).Ints("indices", ids).Msg("")
}

// optionalStrings maps groups that did not participate to nil, so they are written as JSON null.
func optionalStrings(caps rx.CaptureSet) []*string {
	out := make([]*string, len(caps))
	for i := range caps {
		if caps[i].Matched {
			out[i] = &caps[i].Text
		}
	}
	return out
}

// NewTextResultsLogger creates a ResultsLogger that writes plain text lines to w, in the style of grep.
func NewTextResultsLogger(w io.Writer) ResultsLogger {
	return &textResultsLogger{w: w}
}

type textResultsLogger struct {
	w io.Writer
}

func (l *textResultsLogger) IsMatch(op string, pattern string, text string, matched bool) {
	fmt.Fprintln(l.w, matched)
}

func (l *textResultsLogger) Find(pattern string, text string, match string, found bool) {
	if found {
		fmt.Fprintln(l.w, match)
	}
}

func (l *textResultsLogger) FindAll(pattern string, text string, matches []string) {
	for _, m := range matches {
		fmt.Fprintln(l.w, m)
	}
}

func (l *textResultsLogger) Spans(pattern string, text string, spans []rx.Span) {
	for _, s := range spans {
		fmt.Fprintf(l.w, "%d-%d\n", s.Start, s.End)
	}
}

func (l *textResultsLogger) Captures(op string, pattern string, text string, all []rx.CaptureSet) {
	for _, caps := range all {
		fields := make([]string, len(caps))
		for i, g := range caps {
			if g.Matched {
				fields[i] = fmt.Sprintf("%q", g.Text)
			} else {
				fields[i] = "-"
			}
		}
		fmt.Fprintln(l.w, strings.Join(fields, "\t"))
	}
}

func (l *textResultsLogger) SetMatches(patterns []string, text string, ids []int) {
	for _, id := range ids {
		fmt.Fprintf(l.w, "%d\t%s\n", id, patterns[id])
	}
}
