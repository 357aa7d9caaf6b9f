package runner

import (
	"fmt"

	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/games/runner/sim"
)

// BannerFrames is how long a terminal-event banner stays on screen.
const BannerFrames = 90

// banner is the on-screen notification sink.
type banner struct {
	title    string
	subtitle string
	color    core.Color
	frames   int
}

// Notify shows the event for BannerFrames frames.
func (b *banner) Notify(ev sim.Event) {
	switch ev.Kind {
	case sim.EventLevelComplete:
		b.title = "LEVEL COMPLETE"
		b.color = core.ColorBrightGreen
	default:
		b.title = "GAME OVER"
		b.color = core.ColorBrightRed
	}
	b.subtitle = fmt.Sprintf("Score: %d  |  Attempt %d", ev.Score, ev.Attempt)
	b.frames = BannerFrames
}

// tick counts the banner down by one frame.
func (b *banner) tick() {
	if b.frames > 0 {
		b.frames--
	}
}

// visible reports whether the banner should be drawn.
func (b *banner) visible() bool {
	return b.frames > 0
}
