package rx

import (
	"errors"

	"rxfacade/engine"
	"rxfacade/goengine"

	"github.com/rs/zerolog"
)

// Factory compiles Matchers and MatcherSets with one engine.
type Factory struct {
	engine engine.Engine
	logger zerolog.Logger
}

// NewFactory creates a Factory that compiles with the given engine.
func NewFactory(logger zerolog.Logger, e engine.Engine) *Factory {
	return &Factory{engine: e, logger: logger}
}

var defaultFactory = NewFactory(zerolog.Nop(), goengine.NewEngine())

// Compile compiles pattern with the default engine.
func Compile(pattern string) (*Matcher, error) {
	return defaultFactory.Compile(pattern)
}

// MustCompile is like Compile but panics if the pattern cannot be compiled. It simplifies safe initialization of global variables holding matchers.
func MustCompile(pattern string) *Matcher {
	m, err := Compile(pattern)
	if err != nil {
		panic("rx: " + err.Error())
	}
	return m
}

// CompileSet compiles patterns into a set with the default engine.
func CompileSet(patterns []string) (*MatcherSet, error) {
	return defaultFactory.CompileSet(patterns)
}

// Compile compiles pattern. On failure a *CompileError is returned and no Matcher is created.
func (f *Factory) Compile(pattern string) (m *Matcher, err error) {
	p, err := f.engine.Compile(pattern)
	if err != nil {
		f.logger.Debug().Err(err).Str("pattern", pattern).Msg("Pattern failed to compile")
		err = &CompileError{Pattern: pattern, Index: -1, Err: err}
		return
	}

	m = &Matcher{expr: pattern, pattern: p}
	return
}

// CompileSet compiles all patterns into one set. Compilation is all or nothing: if any pattern fails, a *CompileError naming it is returned and no MatcherSet is created.
func (f *Factory) CompileSet(patterns []string) (s *MatcherSet, err error) {
	exprs := make([]string, len(patterns))
	copy(exprs, patterns)

	ps, err := f.engine.CompileSet(exprs)
	if err != nil {
		f.logger.Debug().Err(err).Int("patterns", len(exprs)).Msg("Pattern set failed to compile")

		var pe *engine.PatternError
		if errors.As(err, &pe) {
			err = &CompileError{Pattern: pe.Pattern, Index: pe.Index, Err: pe.Err}
		} else {
			err = &CompileError{Index: -1, Err: err}
		}
		return
	}

	f.logger.Debug().Int("patterns", len(exprs)).Msg("Compiled pattern set")
	s = &MatcherSet{exprs: exprs, set: ps}
	return
}
