// Package re2engine matches with RE2, through the WebAssembly build of RE2 in wasilibs/go-re2.
// Single patterns are re2.Regexp values, and pattern sets are scanned with RE2::Set.
package re2engine

import (
	"fmt"

	"rxfacade/engine"
	"rxfacade/goengine"

	re2exp "github.com/wasilibs/go-re2/experimental"
)

// Engine implements the engine.Engine interface.
type Engine struct {
}

// NewEngine creates an engine.Engine backed by RE2.
func NewEngine() engine.Engine {
	return &Engine{}
}

// Compile compiles a single pattern with RE2.
func (e *Engine) Compile(pattern string) (engine.Pattern, error) {
	return compilePattern(pattern)
}

// CompileSet compiles patterns into an RE2::Set.
func (e *Engine) CompileSet(patterns []string) (s engine.PatternSet, err error) {
	// RE2 only reports that the set failed, so check each pattern first to be able to name the bad one.
	if err = goengine.Validate(patterns); err != nil {
		return
	}

	r := &re2Set{n: len(patterns)}
	if len(patterns) == 0 {
		s = r
		return
	}

	r.set, err = re2exp.CompileSet(patterns)
	if err != nil {
		err = fmt.Errorf("failed to compile RE2 set: %w", err)
		return
	}

	s = r
	return
}

type re2Set struct {
	set *re2exp.Set
	n   int
}

func (r *re2Set) IsMatch(text string) bool {
	if r.set == nil {
		return false
	}
	return len(r.set.FindAllString(text, 1)) > 0
}

func (r *re2Set) Matches(text string) []int {
	if r.set == nil {
		return []int{}
	}

	ids := r.set.FindAllString(text, r.n)
	if ids == nil {
		return []int{}
	}
	return ids
}

func (r *re2Set) Len() int {
	return r.n
}
