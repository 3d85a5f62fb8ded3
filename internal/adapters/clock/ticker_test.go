package clock

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickerScheduler_DispatchesTicks(t *testing.T) {
	queue := make(chan func(), 16)
	s := NewTickerScheduler(func(fn func()) { queue <- fn })

	var count atomic.Int32
	h := s.Every(5*time.Millisecond, func() { count.Add(1) })
	defer h.Cancel()

	// Callbacks only run when the owner drains the queue
	select {
	case fn := <-queue:
		assert.Zero(t, count.Load())
		fn()
	case <-time.After(time.Second):
		require.FailNow(t, "no tick dispatched")
	}
	assert.Equal(t, int32(1), count.Load())
}

func TestTickerScheduler_CancelDropsQueuedTicks(t *testing.T) {
	queue := make(chan func(), 16)
	s := NewTickerScheduler(func(fn func()) { queue <- fn })

	var count atomic.Int32
	h := s.Every(5*time.Millisecond, func() { count.Add(1) })

	var queued func()
	select {
	case queued = <-queue:
	case <-time.After(time.Second):
		require.FailNow(t, "no tick dispatched")
	}

	h.Cancel()
	h.Cancel()
	queued()
	assert.Zero(t, count.Load())
}

func TestTickerScheduler_NilDispatchRunsInline(t *testing.T) {
	s := NewTickerScheduler(nil)
	done := make(chan struct{}, 1)
	h := s.Every(time.Millisecond, func() {
		select {
		case done <- struct{}{}:
		default:
		}
	})
	defer h.Cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		require.FailNow(t, "callback never ran")
	}
}
