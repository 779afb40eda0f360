package main

import (
	"errors"
	"fmt"
	"os"

	"rxfacade/rx"
)

// Dependency injection composition root
func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode is 1 for patterns that do not compile and 2 for every other failure, such as bad flags or config.
func exitCode(err error) int {
	var ce *rx.CompileError
	if errors.As(err, &ce) {
		return 1
	}
	return 2
}
