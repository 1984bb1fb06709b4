package ports

import "time"

// CancelFunc cancels a pending scheduled callback. Idempotent: calling
// it after the callback fired, or twice, is a no-op.
type CancelFunc func()

// Scheduler is the delayed-callback port behind debounced resize
// handling. Injecting a fake scheduler keeps the render primitives
// testable without real timers.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) CancelFunc
}

// FrameScheduler is the animation-frame-equivalent tick port behind
// layout-retry polling.
type FrameScheduler interface {
	RequestFrame(fn func()) CancelFunc
}
