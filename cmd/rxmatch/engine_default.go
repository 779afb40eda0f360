//go:build !hyperscan

package main

import (
	"fmt"

	"rxfacade/config"
	"rxfacade/engine"
	"rxfacade/goengine"
	"rxfacade/re2engine"

	"github.com/rs/zerolog"
)

func newEngine(c *config.Main, logger zerolog.Logger) (engine.Engine, error) {
	switch c.Engine {
	case config.EngineGo:
		return goengine.NewEngine(), nil
	case config.EngineRE2:
		return re2engine.NewEngine(), nil
	}
	return nil, fmt.Errorf("engine %q is not available in this build, rebuild with -tags hyperscan", c.Engine)
}
