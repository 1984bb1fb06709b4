// Package render holds the lifecycle primitives that decide when a
// chart draws: debounced resize observation, retry-until-laid-out
// polling and the tooltip lifecycle. They are generic utilities; the
// actual draw routines live with each chart and are invoked through
// the callbacks these primitives manage.
//
// Timers run through the ports.Scheduler/ports.FrameScheduler ports so
// every primitive is testable with a fake clock.
package render

import (
	"sync"
	"time"

	"chartcore/ports"
)

// DefaultDebounceDelay applies when a caller passes no delay. Call
// sites in practice want anywhere from ~10ms to ~100ms, so the delay
// is a parameter rather than a constant of the engine.
const DefaultDebounceDelay = 50 * time.Millisecond

type debounceState int

const (
	debounceIdle debounceState = iota
	debounceObserving
	debounceTimerPending
	debounceDisconnected
)

// Debouncer wraps a host size-observation mechanism and delivers at
// most one callback per quiescent period after a burst of resize
// notifications. Ordering across bursts is last-write-wins: only the
// most recent size is delivered.
type Debouncer struct {
	mu       sync.Mutex
	state    debounceState
	layout   ports.Layout
	observer ports.SizeObserver
	sched    ports.Scheduler
	delay    time.Duration
	callback func(ports.Size)

	latest     ports.Size
	cancel     ports.CancelFunc
	generation int
}

// NewDebouncer builds a debounced resize adapter. delay <= 0 uses
// DefaultDebounceDelay.
func NewDebouncer(layout ports.Layout, observer ports.SizeObserver, sched ports.Scheduler, delay time.Duration, callback func(ports.Size)) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}
	return &Debouncer{
		state:    debounceIdle,
		layout:   layout,
		observer: observer,
		sched:    sched,
		delay:    delay,
		callback: callback,
	}
}

// Observe starts observation and fires one immediate synthetic
// callback reflecting the container's current size. Idempotent: a
// second call while observing changes nothing, and a call after
// Disconnect stays disconnected.
func (d *Debouncer) Observe() {
	d.mu.Lock()
	if d.state != debounceIdle {
		d.mu.Unlock()
		return
	}
	d.state = debounceObserving
	current := d.layout.Size()
	d.mu.Unlock()

	d.observer.Observe(d.onResize)
	d.callback(current)
}

// Disconnect cancels any pending timer and stops observation.
// Idempotent and terminal.
func (d *Debouncer) Disconnect() {
	d.mu.Lock()
	if d.state == debounceDisconnected {
		d.mu.Unlock()
		return
	}
	d.state = debounceDisconnected
	cancel := d.cancel
	d.cancel = nil
	d.generation++
	d.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	d.observer.Disconnect()
}

// onResize records the latest size and (re)starts the quiescence timer.
func (d *Debouncer) onResize(size ports.Size) {
	d.mu.Lock()
	if d.state != debounceObserving && d.state != debounceTimerPending {
		d.mu.Unlock()
		return
	}
	d.latest = size
	if d.cancel != nil {
		d.cancel()
	}
	d.generation++
	gen := d.generation
	d.state = debounceTimerPending
	d.cancel = d.sched.Schedule(d.delay, func() { d.fire(gen) })
	d.mu.Unlock()
}

func (d *Debouncer) fire(gen int) {
	d.mu.Lock()
	// A newer notification or a disconnect superseded this timer.
	if gen != d.generation || d.state != debounceTimerPending {
		d.mu.Unlock()
		return
	}
	d.state = debounceObserving
	d.cancel = nil
	size := d.latest
	d.mu.Unlock()

	d.callback(size)
}
