package sim

import "testing"

func TestPickupCollectedExactlyOnce(t *testing.T) {
	params := defaultParams()
	params.PlayerX = 50

	def := Definition{
		ID:      "orb",
		Pickups: []Pickup{{X: 500, Y: 300, W: 20, H: 20}},
	}
	e, _ := startLevel(t, params, def)

	if e.world.Player.Box().Overlaps(e.world.Play.Pickups[0].Box()) {
		t.Fatal("player and pickup should not overlap at frame 0")
	}

	collected := 0
	collectedAt := 0
	for frame := 1; frame <= 80; frame++ {
		out := e.Tick()
		if out.Pickups > 0 {
			collected += out.Pickups
			collectedAt = frame
			if !approx(e.world.Player.VelY, params.JumpForce*params.BoostMultiplier) {
				t.Errorf("VelY after boost = %v, expected %v", e.world.Player.VelY, params.JumpForce*params.BoostMultiplier)
			}
		}
	}

	if collected != 1 {
		t.Fatalf("pickup collected %d times, expected 1", collected)
	}
	// 500 - 6*69 = 86, the first x below the player's right edge (90)
	if collectedAt != 69 {
		t.Errorf("pickup collected at frame %d, expected 69", collectedAt)
	}
	if len(e.world.Play.Pickups) != 0 {
		t.Errorf("pickup should be removed, %d left", len(e.world.Play.Pickups))
	}
}

func TestAdjacentPickupsAllCollected(t *testing.T) {
	params := defaultParams()
	w := NewWorld(params, ModeLevel)
	x := w.Player.X
	w.Play.Pickups = []Pickup{
		{X: x, Y: 300, W: 20, H: 20},
		{X: x + 10, Y: 300, W: 20, H: 20},
		{X: x + 500, Y: 300, W: 20, H: 20},
		{X: x + 5, Y: 310, W: 20, H: 20},
	}

	out := Resolve(w)

	if out.Pickups != 3 {
		t.Errorf("collected %d pickups, expected 3", out.Pickups)
	}
	if len(w.Play.Pickups) != 1 || w.Play.Pickups[0].X != x+500 {
		t.Errorf("only the distant pickup should remain, got %+v", w.Play.Pickups)
	}
}

func TestPortalFlipsOnce(t *testing.T) {
	params := defaultParams()
	w := NewWorld(params, ModeLevel)
	w.Play.Portals = []Portal{{X: w.Player.X, Y: 280, W: 30, H: 60}}

	out := Resolve(w)
	if out.Portals != 1 {
		t.Fatalf("Portals = %d, expected 1", out.Portals)
	}
	if w.Player.Polarity != PolarityFlipped {
		t.Error("portal should flip polarity")
	}
	if len(w.Play.Portals) != 0 {
		t.Error("portal should be consumed")
	}

	// Consumed portal cannot flip again
	Resolve(w)
	if w.Player.Polarity != PolarityFlipped {
		t.Error("polarity changed without a portal")
	}
}

func TestTwoPortalsSameFrameCancel(t *testing.T) {
	w := NewWorld(defaultParams(), ModeLevel)
	x := w.Player.X
	w.Play.Portals = []Portal{
		{X: x, Y: 280, W: 30, H: 60},
		{X: x + 5, Y: 280, W: 30, H: 60},
	}

	out := Resolve(w)
	if out.Portals != 2 {
		t.Errorf("Portals = %d, expected 2", out.Portals)
	}
	if w.Player.Polarity != PolarityNormal {
		t.Error("two flips should cancel out")
	}
	if len(w.Play.Portals) != 0 {
		t.Errorf("both portals should be consumed, %d left", len(w.Play.Portals))
	}
}

func TestObstacleResolvedFirst(t *testing.T) {
	params := defaultParams()
	w := NewWorld(params, ModeLevel)
	x := w.Player.X
	w.Play.Obstacles = []Obstacle{{X: x, Y: 300, W: 40, H: 40, Deadly: true}}
	w.Play.Pickups = []Pickup{{X: x, Y: 300, W: 20, H: 20}}
	w.Play.Finish = &Finish{X: x, Y: 40, W: 40, H: 300, Present: true}

	out := Resolve(w)
	if out.Kind != OutcomeGameOver {
		t.Fatalf("Kind = %v, expected game over", out.Kind)
	}
	if out.Pickups != 0 || len(w.Play.Pickups) != 1 {
		t.Error("pickups must not be resolved after a deadly hit")
	}
	if !w.Play.Finish.Present {
		t.Error("finish must not be consumed after a deadly hit")
	}
}

func TestHarmlessObstacleIgnored(t *testing.T) {
	w := NewWorld(defaultParams(), ModeLevel)
	w.Play.Obstacles = []Obstacle{{X: w.Player.X, Y: 300, W: 40, H: 40, Deadly: false}}

	if out := Resolve(w); out.Terminal() {
		t.Errorf("non-deadly obstacle produced %v", out.Kind)
	}
}

func TestFinishTouched(t *testing.T) {
	w := NewWorld(defaultParams(), ModeLevel)
	w.Play.Finish = &Finish{X: w.Player.X + 10, Y: 40, W: 40, H: 300, Present: true}

	out := Resolve(w)
	if out.Kind != OutcomeLevelComplete {
		t.Fatalf("Kind = %v, expected level complete", out.Kind)
	}
	if w.Play.Finish.Present {
		t.Error("touched finish should no longer be present")
	}

	// Absent finish is skipped, not an error
	if out := Resolve(w); out.Terminal() {
		t.Errorf("absent finish produced %v", out.Kind)
	}

	w.Play.Finish = nil
	if out := Resolve(w); out.Terminal() {
		t.Errorf("nil finish produced %v", out.Kind)
	}
}
