package engine

import "fmt"

// PatternError is returned by Engine.CompileSet when one of the patterns in the set could not be compiled.
type PatternError struct {
	Index   int
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("pattern %d (%q): %v", e.Index, e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}
