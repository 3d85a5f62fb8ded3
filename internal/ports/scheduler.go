package ports

import "time"

// TickHandle identifies a registered repeating callback
type TickHandle interface {
	// Cancel stops further invocations; calling it more than once is harmless
	Cancel()
}

// Scheduler registers repeating callbacks. Callbacks are invoked on the same
// logical thread as the code that registered them.
type Scheduler interface {
	Every(interval time.Duration, fn func()) TickHandle
}
