package domain

import (
	"slices"
	"time"
)

// RunState is the run dimension of the timer state machine
type RunState string

const (
	RunIdle    RunState = "idle"
	RunPaused  RunState = "paused"
	RunRunning RunState = "running"
)

// SessionRecord is a durable log entry for one completed interval
type SessionRecord struct {
	DurationSeconds int
	Mode            Mode
	Timestamp       time.Time
}

// PersistedState is the subset of TimerState that survives restarts
type PersistedState struct {
	SessionHistory         []SessionRecord
	SessionsCompletedToday int
	TotalFocusTimeSeconds  int
	TotalSessionsCompleted int
}

// TimerState is the full in-memory state owned by the timer engine.
// Run, Mode and TimeRemainingSeconds are transient and never persisted.
type TimerState struct {
	PersistedState
	Mode                 Mode
	Run                  RunState
	TimeRemainingSeconds int
}

// NewTimerState returns the zero state: idle, focus mode, full focus interval
func NewTimerState() TimerState {
	return TimerState{
		PersistedState:       PersistedState{SessionHistory: []SessionRecord{}},
		Mode:                 ModeFocus,
		Run:                  RunIdle,
		TimeRemainingSeconds: FocusDuration,
	}
}

// RestoreTimerState merges persisted aggregates with fresh transient fields.
// A session in progress is never resumed.
func RestoreTimerState(persisted PersistedState) TimerState {
	state := NewTimerState()
	state.SessionsCompletedToday = persisted.SessionsCompletedToday
	state.TotalFocusTimeSeconds = persisted.TotalFocusTimeSeconds
	state.TotalSessionsCompleted = persisted.TotalSessionsCompleted
	if persisted.SessionHistory != nil {
		state.SessionHistory = slices.Clone(persisted.SessionHistory)
	}
	return state
}

// IsRunning reports whether the countdown is active
func (s TimerState) IsRunning() bool { return s.Run == RunRunning }

// IsPaused reports whether the countdown was paused mid-interval
func (s TimerState) IsPaused() bool { return s.Run == RunPaused }

// Persisted returns a copy of the persisted subset
func (s TimerState) Persisted() PersistedState {
	p := s.PersistedState
	p.SessionHistory = slices.Clone(s.SessionHistory)
	if p.SessionHistory == nil {
		p.SessionHistory = []SessionRecord{}
	}
	return p
}

// Clone returns a deep copy safe to hand to renderers
func (s TimerState) Clone() TimerState {
	c := s
	c.PersistedState = s.Persisted()
	return c
}

// Progress returns the elapsed fraction of the current interval in [0,1]
func (s TimerState) Progress() float64 {
	return IntervalProgress(s.Mode, s.TimeRemainingSeconds)
}

// StatusText returns the status line for the current run state
func (s TimerState) StatusText() string {
	switch s.Run {
	case RunRunning:
		return "In progress..."
	case RunPaused:
		return "Paused"
	default:
		return "Ready to start"
	}
}

// IntervalProgress computes 1 - remaining/duration, clamped to [0,1]
func IntervalProgress(mode Mode, remaining int) float64 {
	total := mode.Duration()
	if total <= 0 {
		return 1
	}
	progress := 1 - float64(remaining)/float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}
