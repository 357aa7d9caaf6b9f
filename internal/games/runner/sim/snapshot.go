package sim

// Snapshot is a read-only copy of the world for rendering. Every slice is
// freshly allocated, so a renderer cannot reach simulation state through it.
type Snapshot struct {
	Width       float64
	Height      float64
	GroundLine  float64
	CeilingLine float64

	Player    Player
	Obstacles []Obstacle
	Pickups   []Pickup
	Portals   []Portal
	Finish    *Finish

	Mode      Mode
	Level     int
	LevelName string
	Frame     int
	Score     int
	Best      int
	Attempt   int
	Progress  float64 // 0..1 distance covered toward the finish; 0 without one

	LastEvent *Event
}

// Snapshot captures the current world state.
func (e *Engine) Snapshot() Snapshot {
	w := e.world
	play := w.Play.Clone()
	s := Snapshot{
		Width:       w.Params.WorldWidth,
		Height:      w.Params.WorldHeight,
		GroundLine:  w.Params.GroundLine,
		CeilingLine: w.Params.CeilingLine,
		Player:      w.Player,
		Obstacles:   play.Obstacles,
		Pickups:     play.Pickups,
		Portals:     play.Portals,
		Finish:      play.Finish,
		Mode:        w.Mode,
		Level:       w.Level,
		LevelName:   e.def.Name,
		Frame:       w.Frame,
		Score:       w.Score(),
		Best:        e.best,
		Attempt:     e.attempt,
		Progress:    e.progress(),
	}
	if e.last != nil {
		ev := *e.last
		s.LastEvent = &ev
	}
	return s
}

// progress measures how far the finish has scrolled toward the player.
func (e *Engine) progress() float64 {
	if e.def.Finish == nil || e.world.Play.Finish == nil {
		return 0
	}
	total := e.def.Finish.X - e.world.Player.X
	if total <= 0 {
		return 1
	}
	done := (e.def.Finish.X - e.world.Play.Finish.X) / total
	switch {
	case done < 0:
		return 0
	case done > 1:
		return 1
	}
	return done
}
