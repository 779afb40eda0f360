package re2engine

import (
	"fmt"
	"unicode/utf8"

	"rxfacade/engine"
	"rxfacade/goengine"

	"github.com/wasilibs/go-re2"
)

type re2Pattern struct {
	re *re2.Regexp

	// Matches the text after a single context character, see goengine.ResumeExpr.
	from *re2.Regexp
}

func compilePattern(expr string) (p *re2Pattern, err error) {
	re, err := re2.Compile(expr)
	if err != nil {
		return
	}

	resume, err := goengine.ResumeExpr(expr)
	if err != nil {
		err = fmt.Errorf("failed to build offset search for pattern %q: %w", expr, err)
		return
	}
	from, err := re2.Compile(resume)
	if err != nil {
		err = fmt.Errorf("failed to compile offset search for pattern %q: %w", expr, err)
		return
	}

	p = &re2Pattern{re: re, from: from}
	return
}

func (p *re2Pattern) IsMatch(text string) bool {
	return p.re.MatchString(text)
}

// IsMatchAt searches text[at:] behind one ASCII stand-in for the rune before at. RE2 assertions only
// distinguish a newline, an ASCII word character and anything else, and the stand-in keeps that
// class while staying valid UTF-8.
func (p *re2Pattern) IsMatchAt(text string, at int) bool {
	if at == 0 {
		return p.re.MatchString(text)
	}
	return p.from.MatchString(contextChar(text[:at]) + text[at:])
}

func contextChar(before string) string {
	r, _ := utf8.DecodeLastRuneInString(before)
	switch {
	case r == '\n':
		return "\n"
	case r == '_' || ('0' <= r && r <= '9') || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z'):
		return "a"
	}
	return "-"
}

func (p *re2Pattern) FindIndex(text string) []int {
	return p.re.FindStringIndex(text)
}

func (p *re2Pattern) FindSubmatchIndex(text string) []int {
	return p.re.FindStringSubmatchIndex(text)
}

func (p *re2Pattern) FindAllSubmatchIndex(text string, handler engine.MatchHandler) {
	for _, loc := range p.re.FindAllStringSubmatchIndex(text, -1) {
		if !handler(loc) {
			return
		}
	}
}

func (p *re2Pattern) NumSubexp() int {
	return p.re.NumSubexp()
}

func (p *re2Pattern) SubexpNames() []string {
	return p.re.SubexpNames()
}
