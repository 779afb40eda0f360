package rx

import (
	"rxfacade/engine"
)

type mockEngine struct {
	compileMockFunc    func(pattern string) (engine.Pattern, error)
	compileSetMockFunc func(patterns []string) (engine.PatternSet, error)
}

func (e *mockEngine) Compile(pattern string) (engine.Pattern, error) {
	return e.compileMockFunc(pattern)
}

func (e *mockEngine) CompileSet(patterns []string) (engine.PatternSet, error) {
	return e.compileSetMockFunc(patterns)
}

// mockPattern answers every query with a fixed list of submatch locations.
type mockPattern struct {
	locs  [][]int
	names []string
}

func (p *mockPattern) IsMatch(text string) bool { return len(p.locs) > 0 }

func (p *mockPattern) IsMatchAt(text string, at int) bool {
	for _, loc := range p.locs {
		if loc[0] >= at {
			return true
		}
	}
	return false
}

func (p *mockPattern) FindIndex(text string) []int {
	if len(p.locs) == 0 {
		return nil
	}
	return p.locs[0][:2]
}

func (p *mockPattern) FindSubmatchIndex(text string) []int {
	if len(p.locs) == 0 {
		return nil
	}
	return p.locs[0]
}

func (p *mockPattern) FindAllSubmatchIndex(text string, handler engine.MatchHandler) {
	for _, loc := range p.locs {
		if !handler(loc) {
			return
		}
	}
}

func (p *mockPattern) NumSubexp() int { return len(p.names) - 1 }

func (p *mockPattern) SubexpNames() []string { return p.names }

type mockPatternSet struct {
	ids []int
	n   int
}

func (s *mockPatternSet) IsMatch(text string) bool  { return len(s.ids) > 0 }
func (s *mockPatternSet) Matches(text string) []int { return s.ids }
func (s *mockPatternSet) Len() int                  { return s.n }
