package levels

import (
	"github.com/vovakirdan/neon-runner/internal/games/runner/sim"
)

type builtinMap struct {
	id, name string
	lines    []string
}

var builtinMaps = []builtinMap{
	// Level 1: single spikes with room to land
	{"intro", "First Steps", []string{
		"..........#.........#..........##..........#.........~~~........#..........|",
	}},

	// Level 2: walls too tall to clear without an orb
	{"orbs", "Boost Orbs", []string{
		"..........................#..................#.................",
		"..........................#..................#..........#......",
		"..........#...........o...#.........#.....o..#.....#....#....|.",
	}},

	// Level 3: ride the ceiling between two portals
	{"flip", "Upside Down", []string{
		"..........................##............##........@...............",
		"..................................................................",
		"..................................................................",
		"..................................................................",
		"..................................................................",
		"..................................................................",
		"..........@.......#####~~~~~~~~~~~~~~~~~~~~~~~~~........#.....|...",
	}},

	// Level 4: everything at once
	{"gauntlet", "Gauntlet", []string{
		"....................................##.......@............................",
		"..........................................................................",
		"..........................................................................",
		"..........................................................................",
		"......................#.................................#.................",
		"......................#.................................#.........#.......",
		"......#.......#...o...#.....@....~~~~~~~~~~~~~~....o....#...o.##..#....|..",
	}},
}

// Builtin returns the built-in levels laid out for the given layout.
func Builtin(layout Layout) ([]sim.Definition, error) {
	defs := make([]sim.Definition, 0, len(builtinMaps))
	for _, m := range builtinMaps {
		def, err := ParseMap(m.id, m.name, m.lines, layout)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}
