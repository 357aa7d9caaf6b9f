package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/neon-runner/internal/config"
)

// defaultParams returns params built from the default runner config.
func defaultParams() Params {
	p, err := NewParams(config.DefaultRunnerConfig())
	if err != nil {
		panic("default config is invalid: " + err.Error())
	}
	return p
}

// staticLevels is a LevelProvider over a fixed slice.
type staticLevels []Definition

func (s staticLevels) Levels() []Definition { return s }

// recorder collects notified events.
type recorder struct {
	events []Event
}

func (r *recorder) Notify(ev Event) { r.events = append(r.events, ev) }

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// startLevel creates a level-mode engine over a single definition.
func startLevel(t *testing.T, params Params, def Definition) (*Engine, *recorder) {
	t.Helper()
	e := NewEngine(params, ModeLevel, staticLevels{def})
	rec := &recorder{}
	e.SetNotifier(rec)
	if err := e.Start(0); err != nil {
		t.Fatalf("Start(0) failed: %v", err)
	}
	return e, rec
}

// wall is a deadly obstacle spanning the whole band at x.
func wall(params Params, x float64) Obstacle {
	return Obstacle{
		X:      x,
		Y:      params.CeilingLine,
		W:      params.ObstacleSize,
		H:      params.GroundLine - params.CeilingLine,
		Deadly: true,
	}
}
