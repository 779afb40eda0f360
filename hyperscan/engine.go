//go:build hyperscan

// Package hyperscan scans pattern sets with Hyperscan. It requires cgo and the Hyperscan library, and is only built with the hyperscan build tag.
package hyperscan

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"unicode/utf8"

	"rxfacade/engine"
	"rxfacade/goengine"

	hs "github.com/flier/gohs/hyperscan"
	"github.com/rs/zerolog"
)

// Engine implements the engine.Engine interface. Single patterns are compiled by goengine.
type Engine struct {
	logger zerolog.Logger
	cache  DbCache
	single engine.Engine
}

// NewEngine creates an engine.Engine that uses Hyperscan for pattern sets. cache may be nil to always compile databases from scratch.
func NewEngine(logger zerolog.Logger, cache DbCache) engine.Engine {
	return &Engine{logger: logger, cache: cache, single: goengine.NewEngine()}
}

// Compile compiles a single pattern with goengine.
func (e *Engine) Compile(pattern string) (engine.Pattern, error) {
	return e.single.Compile(pattern)
}

// CompileSet compiles patterns into a Hyperscan database.
func (e *Engine) CompileSet(exprs []string) (s engine.PatternSet, err error) {
	// Every pattern is also compiled with the Go engine. This validates the set with the same syntax as single patterns, and gives us the verifiers for Hyperscan's candidate matches.
	verifiers, err := goengine.CompileAll(exprs)
	if err != nil {
		return
	}

	h := &hsSet{verifiers: verifiers}
	if len(exprs) == 0 {
		s = h
		return
	}

	patterns := []*hs.Pattern{}
	for i, expr := range exprs {
		p := hs.NewPattern(expr, 0)
		p.Id = i

		// SingleMatch makes Hyperscan only return one match per regex. So if a regex is found multiple time, still only one match is recorded.
		// PrefilterMode gives broader regex compatibility, at the cost possible false positives. Potential matches therefore must be verified with another regex engine.
		p.Flags = hs.SingleMatch | hs.PrefilterMode | hs.Utf8Mode | hs.AllowEmpty

		patterns = append(patterns, p)
	}

	var cacheID string
	if e.cache != nil {
		cacheID = e.cache.cacheID(patterns)
		h.db = e.cache.loadFromCache(cacheID)
	}

	if h.db == nil {
		h.db, err = hs.NewBlockDatabase(patterns...)
		if err != nil {
			// Hyperscan does not support every construct the Go engine does. The set still works, just without the single pass prefilter.
			e.logger.Warn().Err(err).Int("patterns", len(exprs)).Msg("Hyperscan could not compile pattern set, verifying every pattern instead")
			err = nil
			s = h
			return
		}

		if e.cache != nil {
			e.cache.saveToCache(cacheID, h.db)
		}
	}

	h.scratch, err = hs.NewScratch(h.db)
	if err != nil {
		h.db.Close()
		err = fmt.Errorf("failed to allocate Hyperscan scratch space: %w", err)
		return
	}

	runtime.SetFinalizer(h, (*hsSet).free)
	s = h
	return
}

var errStopScan = errors.New("scan stopped after first match")

type hsSet struct {
	// Hyperscan's compiled database of regexes. Nil if Hyperscan could not compile the set.
	db hs.BlockDatabase

	// Prototype of the memory space that Hyperscan needs during evaluation. A scratch space may not be used concurrently, so each scan works on a clone.
	scratch *hs.Scratch

	verifiers []engine.Pattern
}

func (h *hsSet) IsMatch(text string) bool {
	ids, ok := h.scan(text, true)
	if !ok {
		for _, v := range h.verifiers {
			if v.IsMatch(text) {
				return true
			}
		}
		return false
	}
	return len(ids) > 0
}

func (h *hsSet) Matches(text string) []int {
	ids, ok := h.scan(text, false)
	if !ok {
		ids = []int{}
		for i, v := range h.verifiers {
			if v.IsMatch(text) {
				ids = append(ids, i)
			}
		}
	}
	return ids
}

func (h *hsSet) Len() int {
	return len(h.verifiers)
}

// scan returns the ids of the verified matches. ok is false if Hyperscan could not be used for this input, in which case the caller must check every verifier itself.
func (h *hsSet) scan(text string, stopAtFirst bool) (ids []int, ok bool) {
	// Utf8Mode requires valid UTF-8, and Hyperscan is not given empty blocks.
	if h.db == nil || text == "" || !utf8.ValidString(text) {
		return nil, false
	}

	scratch, err := h.scratch.Clone()
	if err != nil {
		return nil, false
	}
	defer scratch.Free()

	ids = []int{}
	checked := make([]bool, len(h.verifiers))
	handler := func(id uint, from, to uint64, flags uint, context interface{}) error {
		if checked[id] {
			return nil
		}
		checked[id] = true

		if !h.verifiers[id].IsMatch(text) {
			return nil
		}

		ids = append(ids, int(id))
		if stopAtFirst {
			return errStopScan
		}
		return nil
	}

	err = h.db.Scan([]byte(text), scratch, handler, nil)
	if err != nil && !(stopAtFirst && len(ids) > 0) {
		return nil, false
	}

	sort.Ints(ids)
	return ids, true
}

func (h *hsSet) free() {
	if h.scratch != nil {
		h.scratch.Free()
	}
	if h.db != nil {
		h.db.Close()
	}
}
