package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	// Arrange
	assert := assert.New(t)
	bb := []byte(`
log_level: debug
engine: re2
cache_dir: /tmp/hs
sets:
  profanity:
    - n[o0]*b
    - b[o0]t
  numbers:
    - \d+
`)

	// Act
	c, err := Parse(bb)

	// Assert
	require.NoError(t, err)
	assert.Equal("debug", c.LogLevel)
	assert.Equal(EngineRE2, c.Engine)
	assert.Equal("/tmp/hs", c.CacheDir)
	assert.Equal([]string{`n[o0]*b`, `b[o0]t`}, c.Sets["profanity"])
	assert.Equal([]string{"numbers", "profanity"}, c.SetNames())
}

func TestParseDefaults(t *testing.T) {
	// Act
	c, err := Parse([]byte(`sets: {a: [x]}`))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "error", c.LogLevel)
	assert.Equal(t, EngineGo, c.Engine)
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		`engine: pcre`,
		`sets: {a: []}`,
		`sets: [`,
	}

	for _, test := range tests {
		// Act
		_, err := Parse([]byte(test))

		// Assert
		assert.Error(t, err, test)
	}
}

func TestLoad(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "rxmatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine: go\n"), 0644))

	// Act
	c, err := Load(path)
	_, missingErr := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, EngineGo, c.Engine)
	assert.Error(t, missingErr)
}
