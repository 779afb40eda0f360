// Package config loads the YAML configuration of the rxmatch command.
package config

import (
	"fmt"
	"os"
	"sort"

	yaml "gopkg.in/yaml.v3"
)

// Engine names accepted in the configuration.
const (
	EngineGo        = "go"
	EngineRE2       = "re2"
	EngineHyperscan = "hyperscan"
)

// Main is the top level configuration.
type Main struct {
	LogLevel string `yaml:"log_level"`
	Engine   string `yaml:"engine"`

	// CacheDir is where the hyperscan engine keeps compiled databases. Empty means the user cache directory.
	CacheDir string `yaml:"cache_dir"`

	// Sets are named pattern sets that can be referred to with "rxmatch set --set name".
	Sets map[string][]string `yaml:"sets"`
}

// Default returns the configuration used when no file is given.
func Default() *Main {
	return &Main{LogLevel: "error", Engine: EngineGo}
}

// Load reads and validates the configuration file at path. Fields missing from the file keep their defaults.
func Load(path string) (*Main, error) {
	bb, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %v: %w", path, err)
	}

	return Parse(bb)
}

// Parse parses and validates a YAML configuration.
func Parse(bb []byte) (*Main, error) {
	c := Default()
	if err := yaml.Unmarshal(bb, c); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that the engine is known and that every set has at least one pattern.
func (c *Main) Validate() error {
	switch c.Engine {
	case EngineGo, EngineRE2, EngineHyperscan:
	default:
		return fmt.Errorf("unknown engine %q, must be one of %v, %v or %v", c.Engine, EngineGo, EngineRE2, EngineHyperscan)
	}

	for _, name := range c.SetNames() {
		if len(c.Sets[name]) == 0 {
			return fmt.Errorf("pattern set %q is empty", name)
		}
	}
	return nil
}

// SetNames returns the names of the configured pattern sets, sorted.
func (c *Main) SetNames() []string {
	names := make([]string, 0, len(c.Sets))
	for name := range c.Sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
