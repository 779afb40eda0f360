package goengine

import (
	"regexp/syntax"
	"runtime"

	"rxfacade/engine"

	"github.com/coregx/ahocorasick"
	"golang.org/x/sync/errgroup"
)

type goSet struct {
	patterns []*goPattern

	// Only set when every pattern is a plain literal.
	literals *ahocorasick.Automaton
}

func compileSet(exprs []string) (s *goSet, err error) {
	patterns, err := compilePatterns(exprs)
	if err != nil {
		return
	}

	s = &goSet{patterns: patterns}
	s.literals = buildLiteralAutomaton(exprs)
	return
}

// Validate compiles every expression and reports the first one that fails as an *engine.PatternError.
// Other set engines use it so that they accept exactly the syntax single patterns accept.
func Validate(exprs []string) error {
	_, err := compilePatterns(exprs)
	return err
}

// CompileAll compiles every expression as a single pattern, failing like Validate.
func CompileAll(exprs []string) ([]engine.Pattern, error) {
	patterns, err := compilePatterns(exprs)
	if err != nil {
		return nil, err
	}

	out := make([]engine.Pattern, len(patterns))
	for i, p := range patterns {
		out[i] = p
	}
	return out, nil
}

// compilePatterns compiles every expression with regexp, spread over one goroutine per CPU.
// On failure the returned *engine.PatternError names the lowest failing index.
func compilePatterns(exprs []string) ([]*goPattern, error) {
	patterns := make([]*goPattern, len(exprs))
	errs := make([]error, len(exprs))

	// Each goroutine walks its own range in order and stops at its first failure. Ranges do not
	// overlap, so no locking is needed, and the lowest recorded failure is the lowest overall.
	var g errgroup.Group
	for _, r := range subRanges(len(exprs), runtime.NumCPU()) {
		r := r
		g.Go(func() error {
			for i := r[0]; i < r[1]; i++ {
				p, err := compilePattern(exprs[i])
				if err != nil {
					errs[i] = err
					return err
				}
				patterns[i] = p
			}
			return nil
		})
	}

	if g.Wait() == nil {
		return patterns, nil
	}

	for i, err := range errs {
		if err != nil {
			return nil, &engine.PatternError{Index: i, Pattern: exprs[i], Err: err}
		}
	}
	return nil, nil
}

func (s *goSet) IsMatch(text string) bool {
	if s.literals != nil {
		return s.literals.IsMatch(bytesOf(text))
	}

	for _, p := range s.patterns {
		if p.IsMatch(text) {
			return true
		}
	}
	return false
}

func (s *goSet) Matches(text string) []int {
	ids := []int{}
	for i, p := range s.patterns {
		if p.IsMatch(text) {
			ids = append(ids, i)
		}
	}
	return ids
}

func (s *goSet) Len() int {
	return len(s.patterns)
}

// buildLiteralAutomaton returns nil unless every expression parses to a case sensitive literal.
func buildLiteralAutomaton(exprs []string) *ahocorasick.Automaton {
	if len(exprs) == 0 {
		return nil
	}

	builder := ahocorasick.NewBuilder()
	for _, expr := range exprs {
		lit, ok := literalOf(expr)
		if !ok {
			return nil
		}
		builder.AddPattern([]byte(lit))
	}

	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return auto
}

func literalOf(expr string) (string, bool) {
	re, err := syntax.Parse(expr, syntax.Perl)
	if err != nil {
		return "", false
	}
	if re.Op != syntax.OpLiteral || re.Flags&syntax.FoldCase != 0 {
		return "", false
	}
	return string(re.Rune), true
}

// subRanges splits [0, n) into at most parts contiguous [start, end) ranges.
func subRanges(n int, parts int) [][2]int {
	if parts < 1 {
		parts = 1
	}
	size := (n + parts - 1) / parts
	if size == 0 {
		return nil
	}

	var ranges [][2]int
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		ranges = append(ranges, [2]int{start, end})
	}
	return ranges
}
