package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/renato0307/tempo/internal/domain"
	"github.com/renato0307/tempo/internal/logging"
	"github.com/renato0307/tempo/internal/ports"
)

// TickInterval is how often a running timer advances by one second
const TickInterval = time.Second

// Notification texts shown when an interval completes
const (
	BreakCompleteBody  = "Time to focus again!"
	BreakCompleteTitle = "Break Time Over"
	FocusCompleteBody  = "Great job! Take a break."
	FocusCompleteTitle = "Focus Session Complete"
)

// EventType identifies what happened inside the engine
type EventType string

const (
	EventBreakCompleted   EventType = "break_completed"
	EventPersistFailed    EventType = "persist_failed"
	EventSessionCompleted EventType = "session_completed"
	EventStateChanged     EventType = "state_changed"
)

// Event is delivered to subscribers after each engine change
type Event struct {
	Err    error
	Record *domain.SessionRecord
	State  domain.TimerState
	Type   EventType
}

// Observer receives engine events synchronously
type Observer func(Event)

// TimerEngine owns the timer state machine. It is not safe for concurrent
// use: all calls, ticks included, must come from one goroutine.
type TimerEngine struct {
	handle    ports.TickHandle
	// loadErr is set while the stored aggregate could not be read; the
	// in-memory state then only holds what happened since and must be merged
	// before anything is written
	loadErr   error
	nextID    int
	notifier  ports.SystemNotifier
	now       func() time.Time
	observers []subscription
	scheduler ports.Scheduler
	sound     ports.SoundPlayer
	state     domain.TimerState
	store     *PersistedStore
}

type subscription struct {
	fn Observer
	id int
}

// EngineOption customizes a TimerEngine
type EngineOption func(*TimerEngine)

// WithClock replaces time.Now, mainly for tests
func WithClock(now func() time.Time) EngineOption {
	return func(e *TimerEngine) { e.now = now }
}

// NewTimerEngine creates an engine in the zero state. Call Load to restore
// persisted aggregates.
func NewTimerEngine(
	store *PersistedStore,
	scheduler ports.Scheduler,
	sound ports.SoundPlayer,
	notifier ports.SystemNotifier,
	opts ...EngineOption,
) *TimerEngine {
	e := &TimerEngine{
		notifier:  notifier,
		now:       time.Now,
		scheduler: scheduler,
		sound:     sound,
		state:     domain.NewTimerState(),
		store:     store,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load restores the persisted aggregates and applies the today-reset rule.
// The engine stays usable with the zero state when the store cannot be read,
// but it will not write until the stored state has been read successfully.
func (e *TimerEngine) Load(ctx context.Context) error {
	persisted, err := e.readStored(ctx)
	if err != nil {
		logging.Logger.Error("Failed to load timer state, starting fresh", "error", err)
		e.state = domain.NewTimerState()
		e.loadErr = err
		return err
	}
	e.loadErr = nil

	e.state = domain.RestoreTimerState(persisted)
	logging.Logger.Info("Timer state loaded",
		"total_sessions", e.state.TotalSessionsCompleted,
		"today", e.state.SessionsCompletedToday,
		"history", len(e.state.SessionHistory))
	e.emit(Event{Type: EventStateChanged})
	return nil
}

// readStored loads the aggregate and zeroes today's count when the stored
// last-active date is not today, recording today as the new date
func (e *TimerEngine) readStored(ctx context.Context) (domain.PersistedState, error) {
	persisted, err := e.store.LoadTimerState(ctx)
	if err != nil {
		return domain.PersistedState{}, err
	}

	today := domain.DayOf(e.now())
	last, ok, err := e.store.LastSessionDate(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to read last session date", "error", err)
	}
	if !ok || !last.Equal(today) {
		logging.Logger.Info("New day, resetting today's session count",
			"last", last.Key(),
			"today", today.Key())
		persisted.SessionsCompletedToday = 0
		if err := e.store.SetLastSessionDate(ctx, today); err != nil {
			logging.Logger.Warn("Failed to store last session date", "error", err)
		}
	}
	return persisted, nil
}

// persist writes the aggregate. After a failed load it first retries the
// read and merges the stored aggregate with the sessions completed since, so
// stored history is never replaced by a partial one.
func (e *TimerEngine) persist(ctx context.Context) error {
	if e.loadErr != nil {
		stored, err := e.readStored(ctx)
		if err != nil {
			return fmt.Errorf("stored state is still unreadable: %w", err)
		}
		e.mergeStored(stored)
		e.loadErr = nil
		logging.Logger.Info("Stored timer state recovered and merged",
			"total_sessions", e.state.TotalSessionsCompleted)
	}
	return e.store.SaveTimerState(ctx, e.state.Persisted())
}

// mergeStored puts the stored aggregate in front of the in-memory one, which
// only counts sessions completed since the failed load
func (e *TimerEngine) mergeStored(stored domain.PersistedState) {
	e.state.SessionsCompletedToday += stored.SessionsCompletedToday
	e.state.TotalSessionsCompleted += stored.TotalSessionsCompleted
	e.state.TotalFocusTimeSeconds += stored.TotalFocusTimeSeconds
	e.state.SessionHistory = append(slices.Clone(stored.SessionHistory), e.state.SessionHistory...)
}

// Start begins or resumes the countdown; it is a no-op while running
func (e *TimerEngine) Start() {
	if e.state.IsRunning() {
		return
	}
	e.state.Run = domain.RunRunning
	e.handle = e.scheduler.Every(TickInterval, e.Tick)
	logging.Logger.Debug("Timer started", "mode", e.state.Mode, "remaining", e.state.TimeRemainingSeconds)
	e.emit(Event{Type: EventStateChanged})
}

// Pause freezes the countdown; it is a no-op unless running
func (e *TimerEngine) Pause() {
	if !e.state.IsRunning() {
		return
	}
	e.cancelTick()
	e.state.Run = domain.RunPaused
	logging.Logger.Debug("Timer paused", "remaining", e.state.TimeRemainingSeconds)
	e.emit(Event{Type: EventStateChanged})
}

// Reset returns to an idle focus interval. Counters and history are kept.
func (e *TimerEngine) Reset() {
	e.cancelTick()
	e.state.Run = domain.RunIdle
	e.state.Mode = domain.ModeFocus
	e.state.TimeRemainingSeconds = domain.FocusDuration
	logging.Logger.Debug("Timer reset")
	e.emit(Event{Type: EventStateChanged})
}

// Tick advances the countdown by one second. Ticks that arrive while the
// timer is not running are ignored.
func (e *TimerEngine) Tick() {
	if !e.state.IsRunning() {
		return
	}

	e.state.TimeRemainingSeconds--
	if e.state.TimeRemainingSeconds <= 0 {
		e.state.TimeRemainingSeconds = 0
		e.cancelTick()
		e.completeSession()
	}
	e.emit(Event{Type: EventStateChanged})
}

// completeSession records a finished focus interval, fires the side effects
// and switches to the next mode without starting it
func (e *TimerEngine) completeSession() {
	finished := e.state.Mode
	e.state.Run = domain.RunIdle
	e.state.Mode = finished.Next()
	e.state.TimeRemainingSeconds = e.state.Mode.Duration()

	if finished == domain.ModeBreak {
		logging.Logger.Info("Break completed")
		e.sideEffects(ports.SoundBreakComplete, BreakCompleteTitle, BreakCompleteBody)
		e.emit(Event{Type: EventBreakCompleted})
		return
	}

	record := domain.SessionRecord{
		DurationSeconds: domain.FocusDuration,
		Mode:            domain.ModeFocus,
		Timestamp:       e.now(),
	}
	e.state.SessionsCompletedToday++
	e.state.TotalSessionsCompleted++
	e.state.TotalFocusTimeSeconds += domain.FocusDuration
	e.state.SessionHistory = append(e.state.SessionHistory, record)
	logging.Logger.Info("Focus session completed",
		"total_sessions", e.state.TotalSessionsCompleted,
		"today", e.state.SessionsCompletedToday)

	if err := e.persist(context.Background()); err != nil {
		logging.Logger.Error("Failed to persist completed session", "error", err)
		e.emit(Event{Type: EventPersistFailed, Err: err})
	}

	e.sideEffects(ports.SoundFocusComplete, FocusCompleteTitle, FocusCompleteBody)
	e.emit(Event{Type: EventSessionCompleted, Record: &record})
}

// sideEffects plays the cue and shows the notification; failures are only logged
func (e *TimerEngine) sideEffects(sound, title, body string) {
	if e.sound != nil {
		if err := e.sound.PlaySoundForEvent(sound); err != nil {
			logging.Logger.Warn("Failed to play sound", "event", sound, "error", err)
		}
	}
	if e.notifier != nil {
		if err := e.notifier.Notify(title, body); err != nil {
			logging.Logger.Warn("Failed to show notification", "title", title, "error", err)
		}
	}
}

// ClearAllData drops the stored timer state and last-active date, then resets
// the in-memory state. The in-memory reset happens even if the store fails.
func (e *TimerEngine) ClearAllData(ctx context.Context) error {
	e.cancelTick()
	err := e.store.ClearAll(ctx)
	e.state = domain.NewTimerState()
	if err == nil {
		// Nothing stored is left to protect
		e.loadErr = nil
	} else {
		logging.Logger.Error("Failed to clear stored data", "error", err)
		e.emit(Event{Type: EventPersistFailed, Err: err})
	}
	e.emit(Event{Type: EventStateChanged})
	return err
}

// State returns a copy of the current state
func (e *TimerEngine) State() domain.TimerState {
	return e.state.Clone()
}

// Progress returns the elapsed fraction of the current interval
func (e *TimerEngine) Progress() float64 {
	return e.state.Progress()
}

// Subscribe registers fn for all future events and returns its unsubscribe func
func (e *TimerEngine) Subscribe(fn Observer) func() {
	e.nextID++
	id := e.nextID
	e.observers = append(e.observers, subscription{fn: fn, id: id})
	return func() {
		e.observers = slices.DeleteFunc(e.observers, func(s subscription) bool { return s.id == id })
	}
}

func (e *TimerEngine) cancelTick() {
	if e.handle != nil {
		e.handle.Cancel()
		e.handle = nil
	}
}

func (e *TimerEngine) emit(ev Event) {
	if len(e.observers) == 0 {
		return
	}
	ev.State = e.state.Clone()
	for _, sub := range slices.Clone(e.observers) {
		sub.fn(ev)
	}
}
