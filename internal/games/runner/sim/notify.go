package sim

// EventKind identifies a terminal gameplay event.
type EventKind int

const (
	EventGameOver EventKind = iota
	EventLevelComplete
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	if k == EventLevelComplete {
		return "level complete"
	}
	return "game over"
}

// Event reports the end of an attempt. It is delivered before the level resets.
type Event struct {
	Kind    EventKind
	Mode    Mode
	Level   int
	LevelID string
	Score   int
	Frame   int
	Attempt int // 1-based attempt that just ended
}

// Notifier receives terminal events. Implementations must not block for long:
// they run inside the frame.
type Notifier interface {
	Notify(ev Event)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ev Event)

// Notify calls f(ev).
func (f NotifierFunc) Notify(ev Event) {
	f(ev)
}

// Notifiers fans an event out to several notifiers in order.
type Notifiers []Notifier

// Notify delivers ev to every non-nil notifier.
func (ns Notifiers) Notify(ev Event) {
	for _, n := range ns {
		if n != nil {
			n.Notify(ev)
		}
	}
}
