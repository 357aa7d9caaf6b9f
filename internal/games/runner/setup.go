package runner

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/games/runner/levels"
	"github.com/vovakirdan/neon-runner/internal/games/runner/sim"
)

// Options selects config, levels and the starting level.
type Options struct {
	ConfigPath string // Empty = default search order
	LevelsDir  string // Empty = built-in levels
	StartLevel string // Level ID or 1-based number; empty = first level
}

// Setup is everything needed to start an engine.
type Setup struct {
	Config  config.RunnerConfig
	Params  sim.Params
	Catalog *levels.Catalog
	Level   int
}

// Prepare loads config and levels and resolves the starting level.
func Prepare(opts Options) (Setup, error) {
	cfg, err := config.LoadRunner(opts.ConfigPath)
	if err != nil {
		return Setup{}, err
	}

	params, err := sim.NewParams(cfg)
	if err != nil {
		return Setup{}, err
	}

	catalog, err := levels.Load(opts.LevelsDir, levels.NewLayout(params, cfg.Entities.TileSize))
	if err != nil {
		return Setup{}, err
	}

	level, err := resolveLevel(catalog, opts.StartLevel)
	if err != nil {
		return Setup{}, err
	}

	return Setup{Config: cfg, Params: params, Catalog: catalog, Level: level}, nil
}

// NewEngine creates and starts an engine for the setup.
func (s Setup) NewEngine(mode sim.Mode) (*sim.Engine, error) {
	e := sim.NewEngine(s.Params, mode, s.Catalog)
	if err := e.Start(s.Level); err != nil {
		return nil, err
	}
	return e, nil
}

// resolveLevel maps a level ID or 1-based number to an index.
func resolveLevel(c *levels.Catalog, start string) (int, error) {
	if start == "" {
		return 0, nil
	}
	if i, ok := c.IndexOf(start); ok {
		return i, nil
	}
	if n, err := strconv.Atoi(start); err == nil {
		if n < 1 || n > c.Len() {
			return 0, &sim.ConfigurationError{
				Field:  "level",
				Reason: fmt.Sprintf("number %d out of range 1..%d", n, c.Len()),
			}
		}
		return n - 1, nil
	}
	return 0, &sim.ConfigurationError{Field: "level", Reason: fmt.Sprintf("unknown level %q", start)}
}
