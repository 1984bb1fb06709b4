// Package timer provides the real clock implementations behind the
// scheduler ports. Tests inject fakes instead.
package timer

import (
	"time"

	"chartcore/ports"
)

// framePeriod approximates one animation-frame tick.
const framePeriod = 16 * time.Millisecond

// Scheduler schedules delayed callbacks on real timers.
type Scheduler struct{}

// NewScheduler creates a real-time scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule runs fn after delay. The returned cancel stops the timer if
// it has not fired yet and is safe to call more than once.
func (s *Scheduler) Schedule(delay time.Duration, fn func()) ports.CancelFunc {
	t := time.AfterFunc(delay, fn)
	return func() { t.Stop() }
}

// FrameScheduler approximates animation-frame ticks with a fixed-period
// timer.
type FrameScheduler struct{}

// NewFrameScheduler creates a real frame scheduler.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// RequestFrame runs fn on the next frame tick.
func (s *FrameScheduler) RequestFrame(fn func()) ports.CancelFunc {
	t := time.AfterFunc(framePeriod, fn)
	return func() { t.Stop() }
}
