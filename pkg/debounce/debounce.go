// Package debounce provides the quiet-period scheduler the interaction layer
// uses to defer work while the user is still typing. A scheduler holds at
// most one pending callback; scheduling again cancels the pending one and
// restarts the quiet timer.
package debounce

import (
	"sync"
	"time"
)

// Scheduler invokes a callback only after activity pauses for the configured
// quiet period. Safe for concurrent use; callbacks run on a timer goroutine.
type Scheduler struct {
	mu      sync.Mutex
	quiet   time.Duration
	timer   *time.Timer
	pending func()
}

// New constructs a Scheduler with the given quiet period. A non-positive
// period makes Schedule invoke callbacks synchronously.
func New(quiet time.Duration) *Scheduler {
	return &Scheduler{quiet: quiet}
}

// Schedule replaces any pending callback with fn and restarts the quiet
// timer.
func (s *Scheduler) Schedule(fn func()) {
	if fn == nil {
		return
	}

	s.mu.Lock()
	if s.quiet <= 0 {
		s.mu.Unlock()
		fn()
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.pending = fn
	s.timer = time.AfterFunc(s.quiet, s.fire)
	s.mu.Unlock()
}

// Cancel drops any pending callback without running it.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.pending = nil
}

// Flush runs the pending callback immediately, if any. It exists so tests and
// teardown paths do not need to wait out the quiet period.
func (s *Scheduler) Flush() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	fn := s.pending
	s.pending = nil
	s.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Pending reports whether a callback is waiting on the quiet timer.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

func (s *Scheduler) fire() {
	s.mu.Lock()
	fn := s.pending
	s.pending = nil
	s.timer = nil
	s.mu.Unlock()

	if fn != nil {
		fn()
	}
}
