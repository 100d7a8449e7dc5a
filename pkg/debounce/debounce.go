// Package debounce provides a cancellable quiescence timer: a scheduled
// function runs only after the configured window has elapsed without a new
// trigger, and every new trigger cancels and restarts the wait.
package debounce

import (
	"sync"
	"time"
)

// DefaultWait is the quiescence window used when none is configured.
const DefaultWait = 300 * time.Millisecond

// Debouncer coalesces bursts of triggers into a single callback invocation.
// The zero value is not usable; use New.
type Debouncer struct {
	mu    sync.Mutex
	wait  time.Duration
	timer *time.Timer
}

// New creates a debouncer with the given quiescence window.
// A non-positive wait falls back to DefaultWait.
func New(wait time.Duration) *Debouncer {
	if wait <= 0 {
		wait = DefaultWait
	}
	return &Debouncer{wait: wait}
}

// Trigger schedules fn to run once the quiescence window elapses.
// A pending earlier schedule is cancelled and replaced; only the most
// recently triggered fn runs.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, fn)
}

// Stop cancels any pending invocation. It reports whether a pending
// invocation was cancelled.
func (d *Debouncer) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer == nil {
		return false
	}
	stopped := d.timer.Stop()
	d.timer = nil
	return stopped
}
