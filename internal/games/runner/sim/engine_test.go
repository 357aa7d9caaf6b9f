package sim

import (
	"errors"
	"reflect"
	"testing"
)

func TestEngineGameOverResetsLevel(t *testing.T) {
	params := defaultParams()
	def := Definition{
		ID:        "reset",
		Obstacles: []Obstacle{wall(params, 400)},
		Pickups:   []Pickup{{X: 170, Y: 300, W: 20, H: 20}},
		Portals:   []Portal{{X: 200, Y: 40, W: 30, H: 300}},
		Finish:    &Finish{X: 2000, Y: 40, W: 40, H: 300, Present: true},
	}
	levels := staticLevels{def}
	e := NewEngine(params, ModeLevel, levels)
	rec := &recorder{}
	e.SetNotifier(rec)
	if err := e.Start(0); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	var out Outcome
	frames := 0
	flipped := false
	for !out.Terminal() && frames < 1000 {
		out = e.Tick()
		frames++
		if !out.Terminal() && e.world.Player.Flipped() && len(e.world.Play.Portals) == 0 {
			flipped = true
		}
	}

	if out.Kind != OutcomeGameOver {
		t.Fatalf("expected game over, got %v", out.Kind)
	}
	// The full-band portal at 200 is passed on frame 2
	if !flipped {
		t.Fatal("player never ran flipped with the portal consumed")
	}
	// Wall at 400 first overlaps the player's right edge (190) at 400-6*36 = 184
	if frames != 36 {
		t.Errorf("game over at frame %d, expected 36", frames)
	}

	if len(rec.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(rec.events))
	}
	ev := rec.events[0]
	if ev.Kind != EventGameOver || ev.Score != 3 || ev.Frame != 36 || ev.Attempt != 1 || ev.LevelID != "reset" {
		t.Errorf("unexpected event %+v", ev)
	}

	w := e.world
	if w.Frame != 0 || w.Score() != 0 || w.SpawnTimer != 0 {
		t.Errorf("counters not reset: frame=%d score=%d timer=%d", w.Frame, w.Score(), w.SpawnTimer)
	}
	if w.Player.X != w.Player.StartX || w.Player.Y != w.Player.StartY || w.Player.VelY != 0 ||
		w.Player.Polarity != PolarityNormal || !w.Player.OnGround {
		t.Errorf("player not reset: %+v", w.Player)
	}
	if !reflect.DeepEqual(w.Play, Instantiate(def)) {
		t.Errorf("play state not restored:\n got  %+v\n want %+v", w.Play, Instantiate(def))
	}
	if len(w.Play.Portals) != 1 || len(w.Play.Pickups) != 1 {
		t.Errorf("expected the portal and pickup back, got %d portals %d pickups",
			len(w.Play.Portals), len(w.Play.Pickups))
	}
	if e.Attempt() != 2 {
		t.Errorf("Attempt() = %d, expected 2", e.Attempt())
	}
	if e.Best() != 3 {
		t.Errorf("Best() = %d, expected 3", e.Best())
	}

	// Mutating the restored play state must not reach the template
	w.Play.Obstacles[0].X = -999
	w.Play.Pickups = nil
	w.Play.Portals[0].X = -999
	w.Play.Finish.Present = false
	if levels[0].Obstacles[0].X != 400 || len(levels[0].Pickups) != 1 ||
		levels[0].Portals[0].X != 200 || !levels[0].Finish.Present {
		t.Fatalf("template was mutated: %+v", levels[0])
	}

	e.Restart()
	if !reflect.DeepEqual(w.Play, Instantiate(def)) {
		t.Errorf("manual restart did not restore the template")
	}
}

func TestEngineLevelCompleteRestartsSameLevel(t *testing.T) {
	params := defaultParams()
	first := Definition{ID: "first", Finish: &Finish{X: 200, Y: 40, W: 40, H: 300, Present: true}}
	second := Definition{ID: "second"}

	e := NewEngine(params, ModeLevel, staticLevels{first, second})
	rec := &recorder{}
	e.SetNotifier(rec)
	if err := e.Start(0); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	e.Tick()
	out := e.Tick() // 200 - 12 = 188 < 190

	if out.Kind != OutcomeLevelComplete {
		t.Fatalf("expected level complete, got %v", out.Kind)
	}
	if len(rec.events) != 1 || rec.events[0].Kind != EventLevelComplete {
		t.Fatalf("unexpected events %+v", rec.events)
	}
	if e.Level() != 0 {
		t.Errorf("Level() = %d, expected the same level 0", e.Level())
	}
	if f := e.world.Play.Finish; f == nil || !f.Present || f.X != 200 {
		t.Errorf("finish not restored: %+v", f)
	}
}

func TestEngineStartInvalidLevel(t *testing.T) {
	e := NewEngine(defaultParams(), ModeLevel, staticLevels{{ID: "only"}})

	for _, idx := range []int{-1, 1, 42} {
		if err := e.Start(idx); !errors.Is(err, ErrConfiguration) {
			t.Errorf("Start(%d) = %v, expected ErrConfiguration", idx, err)
		}
	}

	// A failed start leaves the engine idle
	if out := e.Tick(); out.Terminal() || e.world.Frame != 0 {
		t.Error("Tick on an unstarted engine should do nothing")
	}
	if e.Jump() {
		t.Error("Jump on an unstarted engine should be ignored")
	}
}

func TestEngineEndlessIgnoresLevels(t *testing.T) {
	e := NewEngine(defaultParams(), ModeEndless, nil)
	if err := e.Start(7); err != nil {
		t.Fatalf("endless Start failed: %v", err)
	}
	if e.Level() != 0 {
		t.Errorf("endless Level() = %d, expected 0", e.Level())
	}
}

func TestEngineEndlessEventuallyCollides(t *testing.T) {
	e := NewEngine(defaultParams(), ModeEndless, nil)
	rec := &recorder{}
	e.SetNotifier(rec)
	if err := e.Start(0); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	for i := 0; i < 400 && len(rec.events) == 0; i++ {
		e.Tick()
	}

	if len(rec.events) != 1 {
		t.Fatalf("standing still should hit the first spawned obstacle, got %d events", len(rec.events))
	}
	if rec.events[0].Mode != ModeEndless {
		t.Errorf("event mode = %v, expected endless", rec.events[0].Mode)
	}
	if len(e.world.Play.Obstacles) != 0 {
		t.Errorf("endless reset should clear obstacles, got %d", len(e.world.Play.Obstacles))
	}
}

func TestEngineDeterminism(t *testing.T) {
	run := func() ([]Event, int) {
		e := NewEngine(defaultParams(), ModeEndless, nil)
		rec := &recorder{}
		e.SetNotifier(rec)
		if err := e.Start(0); err != nil {
			t.Fatalf("Start failed: %v", err)
		}
		for i := 0; i < 3000; i++ {
			if i%45 == 0 {
				e.Jump()
			}
			e.Tick()
		}
		return rec.events, e.world.Frame
	}

	events1, frame1 := run()
	events2, frame2 := run()

	if !reflect.DeepEqual(events1, events2) {
		t.Errorf("event sequences differ:\n%+v\n%+v", events1, events2)
	}
	if frame1 != frame2 {
		t.Errorf("frames differ: %d vs %d", frame1, frame2)
	}
}

func TestEngineJumpEntryPoint(t *testing.T) {
	params := defaultParams()
	e, _ := startLevel(t, params, Definition{ID: "empty"})

	if !e.Jump() {
		t.Fatal("grounded jump should succeed")
	}
	if e.world.Player.VelY != params.JumpForce {
		t.Errorf("VelY = %v, expected %v", e.world.Player.VelY, params.JumpForce)
	}

	e.Tick()
	v := e.world.Player.VelY
	if e.Jump() {
		t.Error("airborne jump should be ignored")
	}
	if e.world.Player.VelY != v {
		t.Error("airborne jump changed velocity")
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	params := defaultParams()
	def := sampleDefinition()
	e, _ := startLevel(t, params, def)
	e.Tick()

	snap := e.Snapshot()
	if len(snap.Obstacles) != 1 || snap.Finish == nil {
		t.Fatalf("snapshot missing entities: %+v", snap)
	}
	if snap.Score != e.Score() || snap.Attempt != 1 || snap.Frame != 1 {
		t.Errorf("snapshot counters wrong: %+v", snap)
	}

	snap.Obstacles[0].X = -500
	snap.Finish.Present = false
	snap.Player.Y = 0

	if e.world.Play.Obstacles[0].X == -500 || !e.world.Play.Finish.Present || e.world.Player.Y == 0 {
		t.Error("snapshot mutation reached the simulation")
	}
}

func TestSnapshotProgress(t *testing.T) {
	params := defaultParams()
	def := Definition{ID: "p", Finish: &Finish{X: params.PlayerX + 600, Y: 40, W: 40, H: 300, Present: true}}
	e, _ := startLevel(t, params, def)

	if p := e.Snapshot().Progress; p != 0 {
		t.Errorf("initial progress = %v, expected 0", p)
	}
	for i := 0; i < 50; i++ { // 300 of 600 units
		e.Tick()
	}
	if p := e.Snapshot().Progress; !approx(p, 0.5) {
		t.Errorf("progress = %v, expected 0.5", p)
	}
}

func TestNotifiersFanOut(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	calls := 0
	n := Notifiers{a, nil, NotifierFunc(func(Event) { calls++ }), b}

	n.Notify(Event{Score: 4})

	if len(a.events) != 1 || len(b.events) != 1 || calls != 1 {
		t.Errorf("fan-out failed: a=%d b=%d func=%d", len(a.events), len(b.events), calls)
	}
}

func TestWorldBeginKeepsPlayState(t *testing.T) {
	params := defaultParams()
	w := NewWorld(params, ModeEndless)
	w.Frame, w.SpawnTimer = 120, 45
	w.Player.Y = 100
	w.Player.VelY = -3
	w.Player.Polarity = PolarityFlipped

	play := &PlayState{Obstacles: []Obstacle{wall(params, 500)}}
	w.Begin(play)

	if w.Play != play {
		t.Error("Begin replaced the given play state")
	}
	if w.Frame != 0 || w.SpawnTimer != 0 {
		t.Errorf("counters not reset: frame=%d timer=%d", w.Frame, w.SpawnTimer)
	}
	if w.Player.Y != w.Player.StartY || w.Player.VelY != 0 || w.Player.Flipped() {
		t.Errorf("player not reset: %+v", w.Player)
	}
}

func TestEngineStartDetachesTemplate(t *testing.T) {
	params := defaultParams()
	def := Definition{
		ID:        "detach",
		Obstacles: []Obstacle{wall(params, 600)},
		Portals:   []Portal{{X: 300, Y: 40, W: 30, H: 300}},
	}
	levels := staticLevels{def}
	e := NewEngine(params, ModeLevel, levels)
	if err := e.Start(0); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if !reflect.DeepEqual(e.world.Play, Instantiate(def)) {
		t.Fatalf("play state = %+v, expected %+v", e.world.Play, Instantiate(def))
	}
	e.world.Play.Obstacles[0].X = 1
	e.world.Play.Portals[0].X = 1
	if levels[0].Obstacles[0].X != 600 || levels[0].Portals[0].X != 300 {
		t.Errorf("template was mutated: %+v", levels[0])
	}
}
