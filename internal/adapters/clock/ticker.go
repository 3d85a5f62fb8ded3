package clock

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/renato0307/tempo/internal/ports"
)

// Dispatch hands a callback to the thread that owns the engine. The TUI
// passes a function that posts to the bubbletea update loop.
type Dispatch func(fn func())

// TickerScheduler implements ports.Scheduler with time.Ticker. Ticks fire on
// a background goroutine and are handed to Dispatch, never run directly.
type TickerScheduler struct {
	dispatch Dispatch
}

var _ ports.Scheduler = (*TickerScheduler)(nil)

// NewTickerScheduler creates a scheduler; a nil dispatch runs callbacks inline
func NewTickerScheduler(dispatch Dispatch) *TickerScheduler {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &TickerScheduler{dispatch: dispatch}
}

// Every starts a ticker that requests fn once per interval until canceled
func (s *TickerScheduler) Every(interval time.Duration, fn func()) ports.TickHandle {
	if interval <= 0 {
		interval = time.Second
	}

	h := &tickerHandle{stopCh: make(chan struct{})}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-h.stopCh:
				return
			case <-ticker.C:
				s.dispatch(func() {
					// A tick queued before Cancel must not reach the engine
					if h.canceled.Load() {
						return
					}
					fn()
				})
			}
		}
	}()
	return h
}

type tickerHandle struct {
	canceled atomic.Bool
	once     sync.Once
	stopCh   chan struct{}
}

// Cancel implements ports.TickHandle
func (h *tickerHandle) Cancel() {
	h.canceled.Store(true)
	h.once.Do(func() { close(h.stopCh) })
}
