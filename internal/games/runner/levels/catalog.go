package levels

import (
	"fmt"

	"github.com/vovakirdan/neon-runner/internal/games/runner/sim"
)

// Catalog is an ordered, read-only set of level templates.
// It implements sim.LevelProvider.
type Catalog struct {
	defs    []sim.Definition
	source  string
	skipped []error
}

// NewCatalog wraps definitions in play order. The catalog keeps deep copies,
// so later changes to defs do not reach it.
func NewCatalog(source string, defs []sim.Definition) *Catalog {
	own := make([]sim.Definition, len(defs))
	for i, d := range defs {
		own[i] = d.Clone()
	}
	return &Catalog{defs: own, source: source}
}

// Load returns the catalog for dir, or the built-in levels when dir is empty.
// A directory without a single valid level is a configuration error.
func Load(dir string, layout Layout) (*Catalog, error) {
	if dir == "" {
		defs, err := Builtin(layout)
		if err != nil {
			return nil, fmt.Errorf("levels: builtin: %w", err)
		}
		return NewCatalog("builtin", defs), nil
	}

	loader := NewLoader(dir, layout)
	defs, err := loader.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("levels: no level files in %s: %w", dir, sim.ErrConfiguration)
	}

	c := NewCatalog(dir, defs)
	c.skipped = loader.Skipped()
	return c, nil
}

// Levels returns the templates. Callers must not modify them.
func (c *Catalog) Levels() []sim.Definition {
	return c.defs
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.defs)
}

// Source names where the levels came from.
func (c *Catalog) Source() string {
	return c.source
}

// Skipped returns load errors for files that were ignored.
func (c *Catalog) Skipped() []error {
	return c.skipped
}

// IndexOf finds a level by ID.
func (c *Catalog) IndexOf(id string) (int, bool) {
	for i, d := range c.defs {
		if d.ID == id {
			return i, true
		}
	}
	return -1, false
}
