// Package levels builds runner level templates from ASCII maps and YAML files.
package levels

import (
	"github.com/vovakirdan/neon-runner/internal/games/runner/sim"
)

// Layout converts map grid positions into world coordinates.
type Layout struct {
	TileSize    float64
	StartX      float64 // World x of map column 0
	GroundLine  float64
	CeilingLine float64

	PickupSize   float64
	PortalWidth  float64
	PortalHeight float64
}

// NewLayout derives a layout from engine params. Column 0 starts at the
// middle of the screen so the first tiles are visible on frame one.
func NewLayout(p sim.Params, tileSize float64) Layout {
	return Layout{
		TileSize:     tileSize,
		StartX:       p.WorldWidth / 2,
		GroundLine:   p.GroundLine,
		CeilingLine:  p.CeilingLine,
		PickupSize:   p.PickupSize,
		PortalWidth:  p.PortalWidth,
		PortalHeight: p.PortalHeight,
	}
}

// MaxRows is the number of map rows that fit between the rails.
func (l Layout) MaxRows() int {
	if l.TileSize <= 0 {
		return 0
	}
	return int((l.GroundLine - l.CeilingLine) / l.TileSize)
}

// column returns the world x of a map column.
func (l Layout) column(col int) float64 {
	return l.StartX + float64(col)*l.TileSize
}

// rowTop returns the world y of a row counted up from the ground (0 = on the ground).
func (l Layout) rowTop(fromBottom int) float64 {
	return l.GroundLine - float64(fromBottom+1)*l.TileSize
}

// finish returns a finish marker spanning the whole band at x.
func (l Layout) finish(x float64) *sim.Finish {
	return &sim.Finish{
		X:       x,
		Y:       l.CeilingLine,
		W:       l.TileSize,
		H:       l.GroundLine - l.CeilingLine,
		Present: true,
	}
}
