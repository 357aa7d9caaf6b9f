package loop

import (
	"context"
	"time"

	"github.com/vovakirdan/neon-runner/internal/games/runner/sim"
)

// Engine is the part of sim.Engine the driver needs.
type Engine interface {
	Jump() bool
	Tick() sim.Outcome
	Snapshot() sim.Snapshot
}

// Sink receives a snapshot after every frame.
type Sink interface {
	Render(snap sim.Snapshot)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(snap sim.Snapshot)

// Render calls f(snap).
func (f SinkFunc) Render(snap sim.Snapshot) {
	f(snap)
}

// InputSource is polled once per frame, before the engine ticks.
type InputSource interface {
	JumpRequested(frame int) bool
}

// Driver runs an engine frame by frame. Delta time is tracked for display
// only; physics always advances one fixed step per frame.
type Driver struct {
	engine Engine
	sink   Sink
	input  InputSource

	frames int
	last   time.Time
	delta  time.Duration
}

// NewDriver creates a driver. sink and input may be nil.
func NewDriver(engine Engine, sink Sink, input InputSource) *Driver {
	return &Driver{engine: engine, sink: sink, input: input}
}

// Frame runs one frame stamped ts.
func (d *Driver) Frame(ts time.Time) sim.Outcome {
	if !d.last.IsZero() {
		d.delta = ts.Sub(d.last)
	}
	d.last = ts

	if d.input != nil && d.input.JumpRequested(d.frames) {
		d.engine.Jump()
	}

	out := d.engine.Tick()
	d.frames++

	if d.sink != nil {
		d.sink.Render(d.engine.Snapshot())
	}
	return out
}

// Run loops Frame until the scheduler stops. It returns ctx.Err() when the
// context was cancelled and nil when the scheduler ran out of frames.
func (d *Driver) Run(ctx context.Context, sched Scheduler) error {
	for {
		ts, ok := sched.Next(ctx)
		if !ok {
			return ctx.Err()
		}
		d.Frame(ts)
	}
}

// Frames returns the number of frames run so far.
func (d *Driver) Frames() int {
	return d.frames
}

// Delta returns the wall time between the last two frames.
func (d *Driver) Delta() time.Duration {
	return d.delta
}
