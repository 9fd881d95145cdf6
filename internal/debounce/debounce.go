// Package debounce collapses bursts of input into a single trailing action.
//
// The search box schedules a token on every keystroke and waits Delay()
// before asking whether the token is still the latest one:
//
//	tok := d.Schedule()
//	// ... Delay() later
//	if d.Ready(tok) {
//	    runSearch()
//	}
//
// Scheduling a new token cancels the pending one, so only the last
// keystroke of a burst triggers the search. The Debouncer does not own a
// timer; callers such as the TUI deliver the delayed token with tea.Tick.
package debounce

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultDelay is the pause after the last keystroke before a search runs.
const DefaultDelay = 300 * time.Millisecond

// Token identifies one scheduled action.
type Token uint64

// Debouncer hands out tokens and remembers the latest one.
type Debouncer struct {
	mu     sync.Mutex
	delay  time.Duration
	latest Token
	fired  bool
	logger *zap.Logger
}

// New creates a Debouncer. A non-positive delay uses DefaultDelay.
func New(delay time.Duration, logger *zap.Logger) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Debouncer{
		delay:  delay,
		fired:  true,
		logger: logger,
	}
}

// Delay returns how long callers wait before calling Ready.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Schedule cancels any pending token and returns a new one.
func (d *Debouncer) Schedule() Token {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.latest++
	d.fired = false
	return d.latest
}

// Cancel drops the pending token, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.latest++
	d.fired = true
}

// Ready reports whether tok is the latest scheduled token. It returns true
// at most once per token.
func (d *Debouncer) Ready(tok Token) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if tok != d.latest || d.fired {
		d.logger.Debug("Dropped stale debounce token",
			zap.Uint64("token", uint64(tok)),
			zap.Uint64("latest", uint64(d.latest)))
		return false
	}
	d.fired = true
	return true
}

// Pending reports whether a scheduled token has not fired yet.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return !d.fired
}
