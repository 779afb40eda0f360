package rx

import (
	"errors"
	"fmt"
)

// ErrInvalidOffset is returned by IsMatchFrom when the start offset is negative, beyond the end of the text, or points into the middle of a UTF-8 sequence.
var ErrInvalidOffset = errors.New("start offset is out of range or not on a UTF-8 sequence boundary")

// CompileError is returned when a pattern cannot be compiled. Err is the engine's diagnostic.
type CompileError struct {
	Pattern string

	// Index is the position of the failing pattern within a set. It is -1 for a single pattern, and
	// for set failures the engine could not attribute to one pattern (Pattern is then empty).
	Index int

	Err error
}

func (e *CompileError) Error() string {
	if e.Index < 0 && e.Pattern == "" {
		return fmt.Sprintf("failed to compile pattern set: %v", e.Err)
	}
	if e.Index < 0 {
		return fmt.Sprintf("failed to compile pattern %q: %v", e.Pattern, e.Err)
	}
	return fmt.Sprintf("failed to compile pattern %d (%q) of set: %v", e.Index, e.Pattern, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}
