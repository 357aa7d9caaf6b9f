// Package loop drives a runner engine at a fixed frame rate outside of a UI.
package loop

import (
	"context"
	"time"
)

// Scheduler paces frames. Next blocks until the next frame is due and returns
// its timestamp; false ends the run.
type Scheduler interface {
	Next(ctx context.Context) (time.Time, bool)
}

// TickerScheduler emits wall-clock frames until the context is cancelled.
type TickerScheduler struct {
	interval time.Duration
	ticker   *time.Ticker
}

// NewTickerScheduler creates a scheduler running at fps frames per second.
func NewTickerScheduler(fps int) *TickerScheduler {
	if fps <= 0 {
		fps = 60
	}
	return &TickerScheduler{interval: time.Second / time.Duration(fps)}
}

// Next waits for the next tick.
func (s *TickerScheduler) Next(ctx context.Context) (time.Time, bool) {
	if s.ticker == nil {
		s.ticker = time.NewTicker(s.interval)
	}
	select {
	case <-ctx.Done():
		s.Stop()
		return time.Time{}, false
	case t := <-s.ticker.C:
		return t, true
	}
}

// Stop releases the underlying ticker.
func (s *TickerScheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
}

// Interval returns the frame period.
func (s *TickerScheduler) Interval() time.Duration {
	return s.interval
}

// CountScheduler emits a fixed number of synthetic frames without sleeping.
// Timestamps advance by Step starting from Start.
type CountScheduler struct {
	Frames int
	Start  time.Time
	Step   time.Duration

	emitted int
}

// NewCountScheduler creates a scheduler for n frames spaced as if run at fps.
func NewCountScheduler(n, fps int) *CountScheduler {
	if fps <= 0 {
		fps = 60
	}
	return &CountScheduler{
		Frames: n,
		Start:  time.Unix(0, 0),
		Step:   time.Second / time.Duration(fps),
	}
}

// Next returns the next synthetic timestamp.
func (s *CountScheduler) Next(ctx context.Context) (time.Time, bool) {
	if ctx.Err() != nil || s.emitted >= s.Frames {
		return time.Time{}, false
	}
	s.emitted++
	return s.Start.Add(time.Duration(s.emitted) * s.Step), true
}
