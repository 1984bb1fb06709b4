package render

import (
	"sync"

	"chartcore/ports"
)

// DefaultMaxAttempts bounds layout polling so a container that never
// acquires layout cannot keep a loop alive indefinitely.
const DefaultMaxAttempts = 60

// RetryState is the lifecycle state of a LayoutRetry.
// Resolved, Cancelled and Exhausted are terminal and mutually exclusive.
type RetryState int

const (
	RetryIdle RetryState = iota
	RetryPolling
	RetryResolved
	RetryCancelled
	RetryExhausted
)

// LayoutRetry polls a container on animation-frame ticks until it
// reports non-zero width, then invokes its callback exactly once. If
// the attempt budget runs out the loop stops silently: the render
// simply never happens, which is an acceptable non-fatal outcome.
type LayoutRetry struct {
	mu          sync.Mutex
	state       RetryState
	layout      ports.Layout
	frames      ports.FrameScheduler
	maxAttempts int
	attempts    int
	callback    func()
	cancel      ports.CancelFunc
}

// NewLayoutRetry builds a retry poller. maxAttempts <= 0 uses
// DefaultMaxAttempts.
func NewLayoutRetry(layout ports.Layout, frames ports.FrameScheduler, maxAttempts int, callback func()) *LayoutRetry {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &LayoutRetry{
		state:       RetryIdle,
		layout:      layout,
		frames:      frames,
		maxAttempts: maxAttempts,
		callback:    callback,
	}
}

// Start schedules the polling loop. Idempotent while polling and after
// any terminal state, so at most one loop is ever active per container.
func (r *LayoutRetry) Start() {
	r.mu.Lock()
	if r.state != RetryIdle {
		r.mu.Unlock()
		return
	}
	r.state = RetryPolling
	r.attempts = 0
	r.cancel = r.frames.RequestFrame(r.tick)
	r.mu.Unlock()
}

// Cancel stops the loop without invoking the callback. Safe from any
// state, including after natural completion, and idempotent.
func (r *LayoutRetry) Cancel() {
	r.mu.Lock()
	if r.state != RetryPolling {
		r.mu.Unlock()
		return
	}
	r.state = RetryCancelled
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// State returns the current lifecycle state.
func (r *LayoutRetry) State() RetryState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *LayoutRetry) tick() {
	r.mu.Lock()
	if r.state != RetryPolling {
		r.mu.Unlock()
		return
	}
	r.attempts++

	if r.layout.Size().Width > 0 {
		r.state = RetryResolved
		r.cancel = nil
		callback := r.callback
		r.mu.Unlock()
		callback()
		return
	}

	if r.attempts >= r.maxAttempts {
		r.state = RetryExhausted
		r.cancel = nil
		r.mu.Unlock()
		return
	}

	r.cancel = r.frames.RequestFrame(r.tick)
	r.mu.Unlock()
}
