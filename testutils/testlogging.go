package testutils

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// NewTestLogger creates a zerolog.Logger at debug level that writes to the test's log, so log lines only show up for failing or verbose runs.
func NewTestLogger(tb testing.TB) zerolog.Logger {
	w := zerolog.ConsoleWriter{Out: testWriter{tb}, TimeFormat: time.RFC3339, NoColor: true}
	return zerolog.New(w).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

type testWriter struct {
	tb testing.TB
}

func (tw testWriter) Write(p []byte) (n int, err error) {
	tw.tb.Helper()
	tw.tb.Log(strings.TrimSpace(string(p)))
	return len(p), nil
}
