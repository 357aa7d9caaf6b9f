package sim

// OutcomeKind classifies the result of resolving one frame.
type OutcomeKind int

const (
	OutcomeNone          OutcomeKind = iota // Keep running
	OutcomeGameOver                         // A deadly obstacle was hit
	OutcomeLevelComplete                    // The finish marker was touched
)

// String returns a human-readable name for the outcome.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeGameOver:
		return "game over"
	case OutcomeLevelComplete:
		return "level complete"
	default:
		return "none"
	}
}

// Outcome is the result of Resolve.
type Outcome struct {
	Kind    OutcomeKind
	Pickups int // Pickups collected this frame
	Portals int // Portals passed this frame
}

// Terminal reports whether the outcome ends the attempt.
func (o Outcome) Terminal() bool {
	return o.Kind != OutcomeNone
}

// Resolve checks the player against every entity category in a fixed order:
// obstacles, pickups, portals, finish. A deadly hit returns immediately and
// leaves the rest of the frame unresolved, since the level is about to reset.
//
// Collected pickups and portals are removed with an in-place filter, so each
// entity is visited exactly once.
func Resolve(w *World) Outcome {
	var out Outcome
	box := w.Player.Box()

	for _, o := range w.Play.Obstacles {
		if o.Deadly && box.Overlaps(o.Box()) {
			out.Kind = OutcomeGameOver
			return out
		}
	}

	pickups := w.Play.Pickups[:0]
	for _, p := range w.Play.Pickups {
		if box.Overlaps(p.Box()) {
			Boost(&w.Player, w.Params.JumpForce, w.Params.BoostMultiplier)
			out.Pickups++
			continue
		}
		pickups = append(pickups, p)
	}
	w.Play.Pickups = pickups

	portals := w.Play.Portals[:0]
	for _, p := range w.Play.Portals {
		if box.Overlaps(p.Box()) {
			Flip(&w.Player)
			out.Portals++
			continue
		}
		portals = append(portals, p)
	}
	w.Play.Portals = portals

	if f := w.Play.Finish; f != nil && f.Present && box.Overlaps(f.Box()) {
		f.Present = false
		out.Kind = OutcomeLevelComplete
	}

	return out
}
