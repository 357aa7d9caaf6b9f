package sim

import (
	"io"

	"github.com/charmbracelet/log"
)

// endlessDefinition is the empty template used by endless mode.
var endlessDefinition = Definition{ID: "endless", Name: "Endless"}

// Engine drives one World through attempts. It is not safe for concurrent
// use; the host calls Jump and Tick from a single goroutine.
type Engine struct {
	world    *World
	levels   LevelProvider
	def      Definition
	notifier Notifier
	logger   *log.Logger

	started bool
	attempt int
	best    int
	last    *Event
}

// NewEngine creates an engine. levels may be nil in endless mode.
func NewEngine(params Params, mode Mode, levels LevelProvider) *Engine {
	return &Engine{
		world:  NewWorld(params, mode),
		levels: levels,
		logger: log.New(io.Discard),
	}
}

// SetNotifier sets the sink for terminal events.
func (e *Engine) SetNotifier(n Notifier) {
	e.notifier = n
}

// SetLogger sets the logger. A nil logger discards output.
func (e *Engine) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	e.logger = l
}

// Start begins the first attempt at the given level. Endless mode ignores the
// index. An invalid index fails with ErrConfiguration and leaves the engine
// unchanged.
func (e *Engine) Start(level int) error {
	def := endlessDefinition
	var play *PlayState
	if e.world.Mode == ModeLevel {
		p, d, err := InstantiateLevel(e.levels, level)
		if err != nil {
			return err
		}
		play, def = p, d
	} else {
		level = 0
		play = Instantiate(def)
	}

	e.def = def
	e.world.Level = level
	e.world.Begin(play)
	e.started = true
	e.attempt = 1
	e.last = nil

	e.logger.Info("level started", "mode", e.world.Mode, "level", level, "id", def.ID)
	return nil
}

// Jump requests a jump. It reports whether the jump happened; requests while
// airborne or before Start are ignored.
func (e *Engine) Jump() bool {
	if !e.started {
		return false
	}
	return Jump(&e.world.Player, e.world.Params.JumpForce, e.world.Params.Band())
}

// Tick advances exactly one frame. A terminal outcome has already been
// reported and the level restarted when Tick returns.
func (e *Engine) Tick() Outcome {
	if !e.started {
		return Outcome{}
	}

	Step(e.world)
	out := Resolve(e.world)

	if out.Pickups > 0 || out.Portals > 0 {
		e.logger.Debug("entities consumed",
			"pickups", out.Pickups,
			"portals", out.Portals,
			"polarity", e.world.Player.Polarity,
		)
	}

	switch out.Kind {
	case OutcomeGameOver:
		e.finish(EventGameOver)
	case OutcomeLevelComplete:
		e.finish(EventLevelComplete)
	}
	return out
}

// Restart abandons the current attempt without reporting an event.
func (e *Engine) Restart() {
	if !e.started {
		return
	}
	e.world.Restart(e.def)
	e.attempt++
}

// finish reports the ending attempt and restarts the same level.
func (e *Engine) finish(kind EventKind) {
	ev := Event{
		Kind:    kind,
		Mode:    e.world.Mode,
		Level:   e.world.Level,
		LevelID: e.def.ID,
		Score:   e.world.Score(),
		Frame:   e.world.Frame,
		Attempt: e.attempt,
	}
	if ev.Score > e.best {
		e.best = ev.Score
	}
	e.last = &ev

	e.logger.Info(kind.String(),
		"level", ev.Level,
		"score", ev.Score,
		"frame", ev.Frame,
		"attempt", ev.Attempt,
	)

	if e.notifier != nil {
		e.notifier.Notify(ev)
	}

	e.world.Restart(e.def)
	e.attempt++
}

// Score returns the score of the running attempt.
func (e *Engine) Score() int {
	return e.world.Score()
}

// Best returns the best finished-attempt score since Start.
func (e *Engine) Best() int {
	return e.best
}

// Attempt returns the 1-based number of the running attempt.
func (e *Engine) Attempt() int {
	return e.attempt
}

// Level returns the current level index.
func (e *Engine) Level() int {
	return e.world.Level
}

// Mode returns the engine mode.
func (e *Engine) Mode() Mode {
	return e.world.Mode
}

// Params returns the tuning the engine runs with.
func (e *Engine) Params() Params {
	return e.world.Params
}

// LastEvent returns the most recent terminal event, if any.
func (e *Engine) LastEvent() (Event, bool) {
	if e.last == nil {
		return Event{}, false
	}
	return *e.last, true
}
