// Package logging builds the zerolog loggers of the rxmatch command and writes query results.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger creates a human readable zerolog.Logger writing to out. level can be one of: debug, info, warn, error, fatal, panic.
func NewLogger(out io.Writer, level string) (zerolog.Logger, error) {
	l, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q", level)
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}).Level(l).With().Timestamp().Caller().Logger(), nil
}
