//go:build hyperscan

package main

import (
	"fmt"

	"rxfacade/config"
	"rxfacade/engine"
	"rxfacade/goengine"
	"rxfacade/hyperscan"
	"rxfacade/re2engine"

	"github.com/rs/zerolog"
)

func newEngine(c *config.Main, logger zerolog.Logger) (engine.Engine, error) {
	switch c.Engine {
	case config.EngineGo:
		return goengine.NewEngine(), nil
	case config.EngineRE2:
		return re2engine.NewEngine(), nil
	case config.EngineHyperscan:
		hsfs := hyperscan.NewCacheFileSystem(c.CacheDir)
		hscache := hyperscan.NewDbCache(logger, hsfs)
		return hyperscan.NewEngine(logger, hscache), nil
	}
	return nil, fmt.Errorf("unknown engine %q", c.Engine)
}
