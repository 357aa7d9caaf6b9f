package loop

import (
	"context"
	"testing"
	"time"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/games/runner/sim"
)

// fakeEngine records calls in order.
type fakeEngine struct {
	calls []string
	ticks int
}

func (f *fakeEngine) Jump() bool {
	f.calls = append(f.calls, "jump")
	return true
}

func (f *fakeEngine) Tick() sim.Outcome {
	f.calls = append(f.calls, "tick")
	f.ticks++
	return sim.Outcome{}
}

func (f *fakeEngine) Snapshot() sim.Snapshot {
	f.calls = append(f.calls, "snapshot")
	return sim.Snapshot{Frame: f.ticks}
}

func TestDriverFrameOrder(t *testing.T) {
	eng := &fakeEngine{}
	var rendered []int
	d := NewDriver(eng, SinkFunc(func(s sim.Snapshot) { rendered = append(rendered, s.Frame) }), NewScript(1))

	start := time.Unix(100, 0)
	d.Frame(start)
	d.Frame(start.Add(16 * time.Millisecond))

	want := []string{"tick", "snapshot", "jump", "tick", "snapshot"}
	if len(eng.calls) != len(want) {
		t.Fatalf("calls = %v, expected %v", eng.calls, want)
	}
	for i := range want {
		if eng.calls[i] != want[i] {
			t.Errorf("call %d = %q, expected %q", i, eng.calls[i], want[i])
		}
	}

	if len(rendered) != 2 || rendered[1] != 2 {
		t.Errorf("rendered = %v", rendered)
	}
	if d.Delta() != 16*time.Millisecond {
		t.Errorf("Delta() = %v, expected 16ms", d.Delta())
	}
	if d.Frames() != 2 {
		t.Errorf("Frames() = %d, expected 2", d.Frames())
	}
}

func TestDriverRunCountScheduler(t *testing.T) {
	eng := &fakeEngine{}
	d := NewDriver(eng, nil, nil)
	sched := NewCountScheduler(25, 60)

	if err := d.Run(context.Background(), sched); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if eng.ticks != 25 || d.Frames() != 25 {
		t.Errorf("ticks = %d, frames = %d, expected 25", eng.ticks, d.Frames())
	}
	if _, ok := sched.Next(context.Background()); ok {
		t.Error("scheduler should be exhausted")
	}
	if want := time.Second / 60; d.Delta() != want {
		t.Errorf("Delta() = %v, expected %v", d.Delta(), want)
	}
}

func TestDriverRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := NewDriver(&fakeEngine{}, nil, nil)
	if err := d.Run(ctx, NewCountScheduler(10, 60)); err != context.Canceled {
		t.Errorf("Run = %v, expected context.Canceled", err)
	}
}

func TestTickerSchedulerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s := NewTickerScheduler(1000)
	var last time.Time
	frames := 0
	for {
		ts, ok := s.Next(ctx)
		if !ok {
			break
		}
		if !last.IsZero() && !ts.After(last) {
			t.Fatalf("timestamps not increasing: %v then %v", last, ts)
		}
		last = ts
		frames++
	}
	if frames == 0 {
		t.Error("expected at least one frame before cancellation")
	}
}

func TestTimestampsIncrease(t *testing.T) {
	s := NewCountScheduler(3, 10)
	var prev time.Time
	for {
		ts, ok := s.Next(context.Background())
		if !ok {
			break
		}
		if !ts.After(prev) {
			t.Errorf("timestamp %v not after %v", ts, prev)
		}
		prev = ts
	}
}

func TestParseScript(t *testing.T) {
	s, err := ParseScript("3, 10,,42")
	if err != nil {
		t.Fatalf("ParseScript failed: %v", err)
	}
	for _, f := range []int{3, 10, 42} {
		if !s.JumpRequested(f) {
			t.Errorf("frame %d not scripted", f)
		}
	}
	if s.JumpRequested(4) {
		t.Error("frame 4 should not jump")
	}

	for _, bad := range []string{"x", "1,-2"} {
		if _, err := ParseScript(bad); err == nil {
			t.Errorf("ParseScript(%q) should fail", bad)
		}
	}
}

func TestEvery(t *testing.T) {
	e := Every(5)
	if !e.JumpRequested(0) || !e.JumpRequested(10) || e.JumpRequested(3) {
		t.Error("Every(5) fired on the wrong frames")
	}
	if Every(0).JumpRequested(0) {
		t.Error("Every(0) should never fire")
	}
}

// Headless runs through the real engine are deterministic.
func TestDriverDeterministicWithEngine(t *testing.T) {
	run := func() sim.Snapshot {
		params, err := sim.NewParams(config.DefaultRunnerConfig())
		if err != nil {
			t.Fatalf("NewParams failed: %v", err)
		}
		eng := sim.NewEngine(params, sim.ModeEndless, nil)
		if err := eng.Start(0); err != nil {
			t.Fatalf("Start failed: %v", err)
		}
		var last sim.Snapshot
		d := NewDriver(eng, SinkFunc(func(s sim.Snapshot) { last = s }), Every(40))
		if err := d.Run(context.Background(), NewCountScheduler(2000, 60)); err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		return last
	}

	a, b := run(), run()
	if a.Frame != b.Frame || a.Attempt != b.Attempt || a.Best != b.Best || a.Player != b.Player {
		t.Errorf("runs diverged:\n%+v\n%+v", a, b)
	}
}
