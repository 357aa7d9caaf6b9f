package levels

import (
	"fmt"

	"github.com/vovakirdan/neon-runner/internal/games/runner/sim"
)

// Map tiles.
const (
	TileEmpty  = '.'
	TileSpike  = '#' // Deadly block
	TileDecor  = '~' // Harmless block
	TilePickup = 'o'
	TilePortal = '@'
	TileFinish = '|'
)

// ParseMap creates a level definition from an ASCII map.
// The last line sits on the ground; earlier lines stack upward one tile each.
// Characters:
//
//	'#' = deadly block (horizontal runs merge into one obstacle)
//	'~' = harmless block
//	'o' = boost pickup, centred in its tile
//	'@' = gravity portal, standing on its tile's bottom edge
//	'|' = finish marker spanning the band (at most one column)
//	'.' or ' ' = empty
func ParseMap(id, name string, lines []string, layout Layout) (sim.Definition, error) {
	def := sim.Definition{ID: id, Name: name}
	if len(lines) == 0 {
		return def, nil
	}
	if layout.TileSize <= 0 {
		return sim.Definition{}, fmt.Errorf("levels: %s: tile size must be positive", id)
	}
	if len(lines) > layout.MaxRows() {
		return sim.Definition{}, fmt.Errorf("levels: %s: %d rows do not fit between the rails (max %d)",
			id, len(lines), layout.MaxRows())
	}

	finishCol := -1
	for row, line := range lines {
		fromBottom := len(lines) - 1 - row
		top := layout.rowTop(fromBottom)

		runStart, runTile := -1, byte(0)
		flush := func(end int) {
			if runStart < 0 {
				return
			}
			x := layout.column(runStart)
			def.Obstacles = append(def.Obstacles, sim.Obstacle{
				X:      x,
				Y:      top,
				W:      float64(end-runStart) * layout.TileSize,
				H:      layout.TileSize,
				Deadly: runTile == TileSpike,
			})
			runStart = -1
		}

		for col := 0; col < len(line); col++ {
			ch := line[col]
			if runStart >= 0 && ch != runTile {
				flush(col)
			}

			x := layout.column(col)
			switch ch {
			case TileEmpty, ' ':
			case TileSpike, TileDecor:
				if runStart < 0 {
					runStart, runTile = col, ch
				}
			case TilePickup:
				off := (layout.TileSize - layout.PickupSize) / 2
				def.Pickups = append(def.Pickups, sim.Pickup{
					X: x + off,
					Y: top + off,
					W: layout.PickupSize,
					H: layout.PickupSize,
				})
			case TilePortal:
				def.Portals = append(def.Portals, sim.Portal{
					X: x + (layout.TileSize-layout.PortalWidth)/2,
					Y: top + layout.TileSize - layout.PortalHeight,
					W: layout.PortalWidth,
					H: layout.PortalHeight,
				})
			case TileFinish:
				if finishCol >= 0 && finishCol != col {
					return sim.Definition{}, fmt.Errorf("levels: %s: finish markers in columns %d and %d",
						id, finishCol, col)
				}
				finishCol = col
			default:
				return sim.Definition{}, fmt.Errorf("levels: %s: unknown tile %q at row %d column %d",
					id, ch, row, col)
			}
		}
		flush(len(line))
	}

	if finishCol >= 0 {
		def.Finish = layout.finish(layout.column(finishCol))
	}
	return def, nil
}
