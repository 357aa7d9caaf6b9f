package levels

import (
	"fmt"

	"github.com/vovakirdan/neon-runner/internal/games/runner/sim"
	"gopkg.in/yaml.v3"
)

// YAMLLevel is the on-disk level format. Map tiles and explicit entities may
// be mixed; explicit coordinates are absolute world units.
type YAMLLevel struct {
	ID        string         `yaml:"id"`
	Name      string         `yaml:"name"`
	Map       []string       `yaml:"map,omitempty"`
	Obstacles []YAMLObstacle `yaml:"obstacles,omitempty"`
	Pickups   []YAMLBox      `yaml:"pickups,omitempty"`
	Portals   []YAMLBox      `yaml:"portals,omitempty"`
	Finish    *YAMLFinish    `yaml:"finish,omitempty"`
}

// YAMLBox is a positioned entity. Zero sizes fall back to the layout's.
type YAMLBox struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w,omitempty"`
	H float64 `yaml:"h,omitempty"`
}

// YAMLObstacle is an explicit obstacle. Deadly defaults to true.
type YAMLObstacle struct {
	YAMLBox `yaml:",inline"`
	Deadly  *bool `yaml:"deadly,omitempty"`
}

// YAMLFinish places the finish marker; it always spans the band.
type YAMLFinish struct {
	X float64 `yaml:"x"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte, layout Layout) (sim.Definition, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return sim.Definition{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return sim.Definition{}, fmt.Errorf("level has no id")
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}

	def, err := ParseMap(yl.ID, name, yl.Map, layout)
	if err != nil {
		return sim.Definition{}, err
	}

	for _, o := range yl.Obstacles {
		w, h := sizeOr(o.W, layout.TileSize), sizeOr(o.H, layout.TileSize)
		deadly := o.Deadly == nil || *o.Deadly
		def.Obstacles = append(def.Obstacles, sim.Obstacle{X: o.X, Y: o.Y, W: w, H: h, Deadly: deadly})
	}
	for _, p := range yl.Pickups {
		def.Pickups = append(def.Pickups, sim.Pickup{
			X: p.X, Y: p.Y,
			W: sizeOr(p.W, layout.PickupSize),
			H: sizeOr(p.H, layout.PickupSize),
		})
	}
	for _, p := range yl.Portals {
		def.Portals = append(def.Portals, sim.Portal{
			X: p.X, Y: p.Y,
			W: sizeOr(p.W, layout.PortalWidth),
			H: sizeOr(p.H, layout.PortalHeight),
		})
	}
	if yl.Finish != nil {
		if def.Finish != nil {
			return sim.Definition{}, fmt.Errorf("levels: %s: finish set in both map and finish key", yl.ID)
		}
		def.Finish = layout.finish(yl.Finish.X)
	}

	return def, nil
}

func sizeOr(v, fallback float64) float64 {
	if v > 0 {
		return v
	}
	return fallback
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
