// Package goengine implements the default regex engine on top of Go's regexp package.
//
// regexp runs in time linear in the input for every pattern, and a compiled *regexp.Regexp may be
// used by any number of goroutines at once. Pattern sets compile each member separately, and scan
// literal-only sets with a single Aho-Corasick pass.
package goengine

import (
	"regexp"
	"sync"
	"unicode/utf8"

	"rxfacade/engine"
)

// Engine implements the engine.Engine interface on top of regexp.
type Engine struct {
}

// NewEngine creates an engine.Engine backed by regexp.
func NewEngine() engine.Engine {
	return &Engine{}
}

// Compile compiles a single pattern.
func (e *Engine) Compile(pattern string) (p engine.Pattern, err error) {
	return compilePattern(pattern)
}

// CompileSet compiles all given patterns into a set. The returned error is an *engine.PatternError naming the first pattern that failed.
func (e *Engine) CompileSet(patterns []string) (s engine.PatternSet, err error) {
	return compileSet(patterns)
}

type goPattern struct {
	expr string
	re   *regexp.Regexp

	// Compiled from ResumeExpr on first use of IsMatchAt. Set members never need it.
	fromOnce sync.Once
	from     *regexp.Regexp
}

func compilePattern(expr string) (p *goPattern, err error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return
	}

	p = &goPattern{expr: expr, re: re}
	return
}

func (p *goPattern) IsMatch(text string) bool {
	return p.re.MatchString(text)
}

// IsMatchAt reports whether a match starts at or after at. The rune before at is kept in the searched text so that ^, \b and \B see it.
func (p *goPattern) IsMatchAt(text string, at int) bool {
	if at == 0 {
		return p.re.MatchString(text)
	}

	p.fromOnce.Do(func() {
		resume, err := ResumeExpr(p.expr)
		if err != nil {
			// expr already compiled, so its syntax tree always prints back to a valid expression.
			panic(err)
		}
		p.from = regexp.MustCompile(resume)
	})

	_, width := utf8.DecodeLastRuneInString(text[:at])
	return p.from.MatchString(text[at-width:])
}

func (p *goPattern) FindIndex(text string) []int {
	return p.re.FindStringIndex(text)
}

func (p *goPattern) FindSubmatchIndex(text string) []int {
	return p.re.FindStringSubmatchIndex(text)
}

func (p *goPattern) FindAllSubmatchIndex(text string, handler engine.MatchHandler) {
	for _, loc := range p.re.FindAllStringSubmatchIndex(text, -1) {
		if !handler(loc) {
			return
		}
	}
}

func (p *goPattern) NumSubexp() int {
	return p.re.NumSubexp()
}

func (p *goPattern) SubexpNames() []string {
	return p.re.SubexpNames()
}
