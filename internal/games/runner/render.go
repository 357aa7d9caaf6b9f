package runner

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/games/runner/sim"
)

// Visual characters for rendering
const (
	PlayerChar  = '█'
	SpikeChar   = '▲'
	BlockChar   = '▒'
	PickupChar  = '●'
	PortalChar  = '║'
	FinishChar  = '▞'
	FinishAlt   = '▚'
	GroundChar  = '═'
	CeilingChar = '═'
	FillChar    = '░'
)

// viewport scales world units to screen cells.
type viewport struct {
	sx, sy float64
	w, h   int
}

func newViewport(snap sim.Snapshot, dst *core.Screen) viewport {
	v := viewport{w: dst.Width(), h: dst.Height()}
	if snap.Width > 0 {
		v.sx = float64(v.w) / snap.Width
	}
	if snap.Height > 0 {
		v.sy = float64(v.h) / snap.Height
	}
	return v
}

// rect maps a world rectangle to cells. Anything with a positive size covers
// at least one cell.
func (v viewport) rect(x, y, w, h float64) (cx, cy, cw, ch int) {
	cx = int(math.Floor(x * v.sx))
	cy = int(math.Floor(y * v.sy))
	cw = core.Max(1, int(math.Ceil((x+w)*v.sx))-cx)
	ch = core.Max(1, int(math.Ceil((y+h)*v.sy))-cy)
	return cx, cy, cw, ch
}

func (v viewport) row(y float64) int {
	return int(math.Floor(y * v.sy))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		drawCenteredMessage(dst, "CANNOT START", g.err.Error(), core.ColorBrightRed)
		return
	}
	if g.engine == nil {
		return
	}

	DrawSnapshot(dst, g.snap)

	switch {
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorBrightYellow)
	case g.banner.visible():
		drawCenteredMessage(dst, g.banner.title, g.banner.subtitle, g.banner.color)
	}
}

// DrawSnapshot draws the playfield and HUD for a snapshot.
func DrawSnapshot(dst *core.Screen, snap sim.Snapshot) {
	v := newViewport(snap, dst)

	drawRails(dst, v, snap)

	for _, o := range snap.Obstacles {
		x, y, w, h := v.rect(o.X, o.Y, o.W, o.H)
		if o.Deadly {
			dst.DrawRect(x, y, w, h, SpikeChar, core.ColorNeonPink)
		} else {
			dst.DrawRect(x, y, w, h, BlockChar, core.ColorNeonPurple)
		}
	}
	for _, p := range snap.Pickups {
		x, y, w, h := v.rect(p.X, p.Y, p.W, p.H)
		dst.DrawRect(x, y, w, h, PickupChar, core.ColorBrightYellow)
	}
	for _, p := range snap.Portals {
		x, y, w, h := v.rect(p.X, p.Y, p.W, p.H)
		dst.DrawRect(x, y, w, h, PortalChar, core.ColorNeonBlue)
	}
	if f := snap.Finish; f != nil && f.Present {
		drawFinish(dst, v, f)
	}

	p := snap.Player
	x, y, w, h := v.rect(p.X, p.Y, p.W, p.H)
	color := core.ColorBrightCyan
	if p.Flipped() {
		color = core.ColorBrightMagenta
	}
	dst.DrawRect(x, y, w, h, PlayerChar, color)

	drawHUD(dst, snap)
}

// drawFinish draws the finish marker as a checkered flag, one column at a time.
func drawFinish(dst *core.Screen, v viewport, f *sim.Finish) {
	x, y, w, h := v.rect(f.X, f.Y, f.W, f.H)
	for i := 0; i < w; i++ {
		r := FinishChar
		if (x+i)%2 != 0 {
			r = FinishAlt
		}
		dst.DrawVLine(x+i, y, h, r, core.ColorBrightGreen)
	}
}

// drawRails draws the ceiling strip, the ground strip and their edges.
func drawRails(dst *core.Screen, v viewport, snap sim.Snapshot) {
	ceil := v.row(snap.CeilingLine)
	for y := 0; y < ceil-1; y++ {
		dst.DrawHLine(0, y, v.w, FillChar, core.ColorDarkGray)
	}
	if ceil > 0 {
		dst.DrawHLine(0, ceil-1, v.w, CeilingChar, core.ColorNeonPurple)
	}

	ground := v.row(snap.GroundLine)
	dst.DrawHLine(0, ground, v.w, GroundChar, core.ColorNeonPurple)
	for y := ground + 1; y < v.h; y++ {
		dst.DrawHLine(0, y, v.w, FillChar, core.ColorDarkGray)
	}
}

// drawHUD writes score and level info on the top row and a progress bar on
// the bottom row.
func drawHUD(dst *core.Screen, snap sim.Snapshot) {
	left := fmt.Sprintf(" Score: %d  Best: %d  Try: %d ", snap.Score, snap.Best, snap.Attempt)
	dst.DrawTextColored(1, 0, left, core.ColorBrightWhite)

	right := " ENDLESS "
	if snap.Mode == sim.ModeLevel {
		right = fmt.Sprintf(" %d. %s ", snap.Level+1, snap.LevelName)
	}
	dst.DrawTextColored(dst.Width()-len([]rune(right))-1, 0, right, core.ColorNeonBlue)

	if snap.Mode == sim.ModeLevel && snap.Finish != nil {
		bar := progressBar(snap.Progress, core.Clamp(dst.Width()/3, 10, 40))
		dst.DrawTextColored((dst.Width()-len([]rune(bar)))/2, dst.Height()-1, bar, core.ColorBrightGreen)
	}
}

// progressBar renders a [====    ] bar of the given inner width.
func progressBar(progress float64, width int) string {
	filled := int(math.Round(core.ClampF(progress, 0, 1) * float64(width)))
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, color core.Color) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Min(core.Max(len([]rune(title)), len([]rune(subtitle)))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, color)

	dst.DrawTextCentered(boxY+1, title, color)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorWhite)
}
