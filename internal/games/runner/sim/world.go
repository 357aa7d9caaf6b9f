package sim

// Mode selects where obstacles come from.
type Mode int

const (
	ModeLevel   Mode = iota // Entities come from a level definition
	ModeEndless             // Obstacles spawn on a timer
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	if m == ModeEndless {
		return "endless"
	}
	return "level"
}

// World is the complete mutable game state for one engine.
type World struct {
	Params     Params
	Mode       Mode
	Level      int
	Player     Player
	Play       *PlayState
	Frame      int // Frames since the last reset
	SpawnTimer int // Endless mode only
}

// NewWorld creates a world with a grounded player and an empty field.
func NewWorld(params Params, mode Mode) *World {
	band := params.Band()
	return &World{
		Params: params,
		Mode:   mode,
		Player: NewPlayer(params.PlayerX, band.GroundY, params.PlayerSize),
		Play:   &PlayState{},
	}
}

// Score is derived from elapsed frames only.
func (w *World) Score() int {
	return w.Frame / w.Params.FrameDivisor
}

// Restart rebuilds the play state from the template and resets counters and the player.
func (w *World) Restart(def Definition) {
	w.Begin(Instantiate(def))
}

// Begin starts an attempt on an already instantiated play state.
func (w *World) Begin(play *PlayState) {
	w.Play = play
	w.Frame = 0
	w.SpawnTimer = 0
	w.Player.Reset()
}
