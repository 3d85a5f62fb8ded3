package clock

import (
	"time"

	"github.com/renato0307/tempo/internal/ports"
)

// ManualScheduler implements ports.Scheduler without real time. Ticks happen
// only when Advance is called, on the caller's goroutine.
type ManualScheduler struct {
	handles []*manualHandle
}

var _ ports.Scheduler = (*ManualScheduler)(nil)

// NewManualScheduler creates a scheduler with no registered callbacks
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Every registers fn; interval is recorded but otherwise ignored
func (s *ManualScheduler) Every(interval time.Duration, fn func()) ports.TickHandle {
	h := &manualHandle{fn: fn, interval: interval}
	s.handles = append(s.handles, h)
	return h
}

// Advance fires n ticks on every active handle
func (s *ManualScheduler) Advance(n int) {
	for i := 0; i < n; i++ {
		// Snapshot so callbacks registered during this tick start on the next one
		current := append([]*manualHandle(nil), s.handles...)
		for _, h := range current {
			if !h.canceled {
				h.fn()
			}
		}
		s.prune()
	}
}

// Active returns the number of handles that have not been canceled
func (s *ManualScheduler) Active() int {
	n := 0
	for _, h := range s.handles {
		if !h.canceled {
			n++
		}
	}
	return n
}

func (s *ManualScheduler) prune() {
	kept := s.handles[:0]
	for _, h := range s.handles {
		if !h.canceled {
			kept = append(kept, h)
		}
	}
	s.handles = kept
}

type manualHandle struct {
	canceled bool
	fn       func()
	interval time.Duration
}

// Cancel implements ports.TickHandle
func (h *manualHandle) Cancel() {
	h.canceled = true
}
