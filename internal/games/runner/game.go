// Package runner implements Neon Runner, a gravity-flipping side scroller.
// The simulation lives in the sim subpackage; this package adapts it to the
// platform's Game interface and draws it onto a character screen.
package runner

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/games/runner/sim"
	"github.com/vovakirdan/neon-runner/internal/registry"
)

// Game IDs.
const (
	IDLevels  = "runner"
	IDEndless = "runner_endless"
)

// Package settings, set from the CLI before games are created.
var (
	options  Options
	logger   = log.New(io.Discard)
	notifier sim.Notifier
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	options.ConfigPath = path
}

// SetLevelsDir sets a directory of YAML levels to play instead of the built-ins.
func SetLevelsDir(dir string) {
	options.LevelsDir = dir
}

// SetStartLevel selects the level by ID or 1-based number.
func SetStartLevel(level string) {
	options.StartLevel = level
}

// SetLogger sets the logger handed to every new engine.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// SetNotifier adds a sink that receives every terminal event, such as the
// attempt journal. It is shared by all game instances.
func SetNotifier(n sim.Notifier) {
	notifier = n
}

// Game implements registry.Game for both level and endless mode.
type Game struct {
	mode    sim.Mode
	engine  *sim.Engine
	runtime core.RuntimeConfig
	snap    sim.Snapshot
	banner  banner
	paused  bool
	err     error // Setup failure, shown instead of the playfield
}

// New creates a level-mode game.
func New() *Game {
	return &Game{mode: sim.ModeLevel}
}

// NewEndless creates an endless-mode game.
func NewEndless() *Game {
	return &Game{mode: sim.ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == sim.ModeEndless {
		return IDEndless
	}
	return IDLevels
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == sim.ModeEndless {
		return "Neon Runner (Endless)"
	}
	return "Neon Runner"
}

// Reset loads config and levels and starts the first attempt.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.banner = banner{}
	g.err = nil
	g.engine = nil

	setup, err := Prepare(options)
	if err != nil {
		logger.Error("runner setup failed", "err", err)
		g.err = err
		return
	}

	engine, err := setup.NewEngine(g.mode)
	if err != nil {
		logger.Error("runner start failed", "err", err)
		g.err = err
		return
	}
	engine.SetLogger(logger)
	engine.SetNotifier(sim.Notifiers{&g.banner, notifier})

	g.engine = engine
	g.snap = engine.Snapshot()
}

// Step advances the game by one tick. Pause freezes the simulation here,
// outside the engine.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.engine.Restart()
	}
	if in.Has(core.ActionJump) {
		g.engine.Jump()
	}

	g.banner.tick()
	out := g.engine.Tick()
	g.snap = g.engine.Snapshot()

	return core.StepResult{State: g.State(), Restarted: out.Terminal()}
}

// Snapshot returns the state drawn by the last Render.
func (g *Game) Snapshot() sim.Snapshot {
	return g.snap
}

// Err returns the setup error, if the game could not start.
func (g *Game) Err() error {
	return g.err
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{Paused: g.paused}
	}
	return core.GameState{
		Score:   g.snap.Score,
		Best:    g.snap.Best,
		Attempt: g.snap.Attempt,
		Level:   g.snap.Level,
		Paused:  g.paused,
	}
}

// Register both modes with the registry
func init() {
	registry.Register(IDLevels, func() registry.Game {
		return New()
	})
	registry.Register(IDEndless, func() registry.Game {
		return NewEndless()
	})
}
