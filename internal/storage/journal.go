package storage

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/neon-runner/internal/games/runner/sim"
)

// Journal records terminal events as attempts. It implements sim.Notifier;
// write failures are logged, never returned into the frame.
type Journal struct {
	store  *Store
	logger *log.Logger
}

// NewJournal creates a journal writing to store. A nil logger discards output.
func NewJournal(store *Store, logger *log.Logger) *Journal {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Journal{store: store, logger: logger}
}

// Notify records ev.
func (j *Journal) Notify(ev sim.Event) {
	a := AttemptFromEvent(ev)
	if _, err := j.store.RecordAttempt(a); err != nil {
		j.logger.Warn("attempt not recorded", "err", err, "level", a.LevelID, "score", a.Score)
	}
}

// GameID returns the journal game ID for an engine mode.
func GameID(mode sim.Mode) string {
	if mode == sim.ModeEndless {
		return "runner_endless"
	}
	return "runner"
}

// AttemptFromEvent converts a terminal event into a journal row.
func AttemptFromEvent(ev sim.Event) Attempt {
	outcome := OutcomeGameOver
	if ev.Kind == sim.EventLevelComplete {
		outcome = OutcomeLevelComplete
	}
	return Attempt{
		GameID:  GameID(ev.Mode),
		Level:   ev.Level,
		LevelID: ev.LevelID,
		Outcome: outcome,
		Score:   ev.Score,
		Frames:  ev.Frame,
		Attempt: ev.Attempt,
	}
}

var _ sim.Notifier = (*Journal)(nil)
