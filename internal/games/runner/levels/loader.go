package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/vovakirdan/neon-runner/internal/games/runner/sim"
)

// Loader handles loading levels from a directory.
type Loader struct {
	Root    string
	Layout  Layout
	skipped []error
}

// NewLoader creates a new level loader.
func NewLoader(root string, layout Layout) *Loader {
	return &Loader{Root: root, Layout: layout}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering. Files that fail to
// parse are skipped and reported by Skipped.
func (l *Loader) LoadAll() ([]sim.Definition, error) {
	var defs []sim.Definition
	l.skipped = nil

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !slices.Contains(FormatExtensions(), ext) {
			return nil
		}

		def, err := l.LoadFile(path)
		if err != nil {
			l.skipped = append(l.skipped, err)
			return nil
		}

		defs = append(defs, def)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.SliceStable(defs, func(i, j int) bool {
		return defs[i].ID < defs[j].ID
	})

	return defs, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (sim.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sim.Definition{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	def, err := ParseYAML(data, l.Layout)
	if err != nil {
		return sim.Definition{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return def, nil
}

// Skipped returns the errors of files ignored by the last LoadAll.
func (l *Loader) Skipped() []error {
	return l.skipped
}
