package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tempo/internal/adapters/clock"
	"github.com/renato0307/tempo/internal/adapters/locale"
	"github.com/renato0307/tempo/internal/adapters/storage"
	"github.com/renato0307/tempo/internal/domain"
	"github.com/renato0307/tempo/internal/ports"
	portsmocks "github.com/renato0307/tempo/internal/ports/mocks"
)

var testNow = time.Date(2026, 10, 14, 9, 0, 0, 0, time.Local)

type engineFixture struct {
	engine    *TimerEngine
	events    []Event
	kv        *storage.MemoryStore
	notifier  *portsmocks.MockSystemNotifier
	scheduler *clock.ManualScheduler
	sound     *portsmocks.MockSoundPlayer
}

func newEngineFixture(t *testing.T, seed map[string]string) *engineFixture {
	t.Helper()
	f := &engineFixture{
		kv:        storage.NewMemoryStore(seed),
		notifier:  portsmocks.NewMockSystemNotifier(t),
		scheduler: clock.NewManualScheduler(),
		sound:     portsmocks.NewMockSoundPlayer(t),
	}
	f.engine = NewTimerEngine(NewPersistedStore(f.kv), f.scheduler, f.sound, f.notifier,
		WithClock(func() time.Time { return testNow }))
	f.engine.Subscribe(func(ev Event) { f.events = append(f.events, ev) })
	return f
}

func (f *engineFixture) count(typ EventType) int {
	n := 0
	for _, ev := range f.events {
		if ev.Type == typ {
			n++
		}
	}
	return n
}

func TestTimerEngine_InitialState(t *testing.T) {
	f := newEngineFixture(t, nil)
	require.NoError(t, f.engine.Load(context.Background()))

	state := f.engine.State()
	assert.Equal(t, domain.RunIdle, state.Run)
	assert.Equal(t, domain.ModeFocus, state.Mode)
	assert.Equal(t, domain.FocusDuration, state.TimeRemainingSeconds)
	assert.Zero(t, f.engine.Progress())
	assert.Equal(t, "Ready to start", state.StatusText())
}

func TestTimerEngine_StartPauseReset(t *testing.T) {
	f := newEngineFixture(t, nil)

	f.engine.Start()
	f.engine.Start()
	assert.Equal(t, 1, f.scheduler.Active())
	assert.True(t, f.engine.State().IsRunning())

	f.scheduler.Advance(10)
	assert.Equal(t, domain.FocusDuration-10, f.engine.State().TimeRemainingSeconds)

	f.engine.Pause()
	assert.True(t, f.engine.State().IsPaused())
	assert.False(t, f.engine.State().IsRunning())
	assert.Zero(t, f.scheduler.Active())

	// Direct ticks after pause are ignored too
	f.engine.Tick()
	f.scheduler.Advance(5)
	assert.Equal(t, domain.FocusDuration-10, f.engine.State().TimeRemainingSeconds)

	f.engine.Pause()
	assert.True(t, f.engine.State().IsPaused())

	f.engine.Start()
	f.scheduler.Advance(1)
	assert.Equal(t, domain.FocusDuration-11, f.engine.State().TimeRemainingSeconds)

	f.engine.Reset()
	state := f.engine.State()
	assert.Equal(t, domain.RunIdle, state.Run)
	assert.Equal(t, domain.ModeFocus, state.Mode)
	assert.Equal(t, domain.FocusDuration, state.TimeRemainingSeconds)
	assert.Zero(t, f.scheduler.Active())

	f.engine.Tick()
	assert.Equal(t, domain.FocusDuration, f.engine.State().TimeRemainingSeconds)
}

func TestTimerEngine_FocusCompletion(t *testing.T) {
	f := newEngineFixture(t, nil)
	f.sound.EXPECT().PlaySoundForEvent(ports.SoundFocusComplete).Return(nil).Once()
	f.notifier.EXPECT().Notify(FocusCompleteTitle, FocusCompleteBody).Return(nil).Once()

	f.engine.Start()
	f.scheduler.Advance(domain.FocusDuration)

	state := f.engine.State()
	assert.Equal(t, domain.RunIdle, state.Run)
	assert.Equal(t, domain.ModeBreak, state.Mode)
	assert.Equal(t, domain.BreakDuration, state.TimeRemainingSeconds)
	assert.Equal(t, 1, state.SessionsCompletedToday)
	assert.Equal(t, 1, state.TotalSessionsCompleted)
	assert.Equal(t, domain.FocusDuration, state.TotalFocusTimeSeconds)
	require.Len(t, state.SessionHistory, 1)
	assert.Equal(t, domain.SessionRecord{DurationSeconds: 3600, Mode: domain.ModeFocus, Timestamp: testNow}, state.SessionHistory[0])
	assert.Zero(t, f.scheduler.Active())
	assert.Equal(t, 1, f.count(EventSessionCompleted))

	// No auto-start; further ticks change nothing
	f.scheduler.Advance(5)
	assert.Equal(t, domain.BreakDuration, f.engine.State().TimeRemainingSeconds)

	// Aggregate was persisted
	reloaded, err := NewPersistedStore(f.kv).LoadTimerState(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.TotalSessionsCompleted)
	assert.Len(t, reloaded.SessionHistory, 1)
}

func TestTimerEngine_BreakCompletion(t *testing.T) {
	f := newEngineFixture(t, nil)
	f.sound.EXPECT().PlaySoundForEvent(ports.SoundFocusComplete).Return(nil).Once()
	f.notifier.EXPECT().Notify(FocusCompleteTitle, FocusCompleteBody).Return(nil).Once()
	f.sound.EXPECT().PlaySoundForEvent(ports.SoundBreakComplete).Return(nil).Once()
	f.notifier.EXPECT().Notify(BreakCompleteTitle, BreakCompleteBody).Return(nil).Once()

	f.engine.Start()
	f.scheduler.Advance(domain.FocusDuration)
	before := f.engine.State()

	f.engine.Start()
	f.scheduler.Advance(domain.BreakDuration)

	state := f.engine.State()
	assert.Equal(t, domain.ModeFocus, state.Mode)
	assert.Equal(t, domain.FocusDuration, state.TimeRemainingSeconds)
	assert.Equal(t, domain.RunIdle, state.Run)
	assert.Equal(t, before.TotalSessionsCompleted, state.TotalSessionsCompleted)
	assert.Equal(t, before.SessionsCompletedToday, state.SessionsCompletedToday)
	assert.Len(t, state.SessionHistory, 1)
	assert.Equal(t, 1, f.count(EventBreakCompleted))
}

func TestTimerEngine_SideEffectFailuresAreIgnored(t *testing.T) {
	f := newEngineFixture(t, nil)
	f.sound.EXPECT().PlaySoundForEvent(mock.Anything).Return(errors.New("no speakers"))
	f.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(errors.New("no daemon"))

	f.engine.Start()
	f.scheduler.Advance(domain.FocusDuration)

	assert.Equal(t, 1, f.engine.State().TotalSessionsCompleted)
	assert.Zero(t, f.count(EventPersistFailed))
}

func TestTimerEngine_PersistFailure(t *testing.T) {
	f := newEngineFixture(t, nil)
	f.sound.EXPECT().PlaySoundForEvent(mock.Anything).Return(nil)
	f.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil)

	f.engine.Start()
	f.scheduler.Advance(domain.FocusDuration - 1)
	require.NoError(t, f.kv.Close())
	f.scheduler.Advance(1)

	state := f.engine.State()
	assert.Equal(t, 1, state.TotalSessionsCompleted)
	assert.Equal(t, domain.ModeBreak, state.Mode)
	require.Equal(t, 1, f.count(EventPersistFailed))
	for _, ev := range f.events {
		if ev.Type == EventPersistFailed {
			assert.ErrorIs(t, ev.Err, domain.ErrStorageUnavailable)
		}
	}
}

func TestTimerEngine_Load(t *testing.T) {
	stored := `{"sessionsCompletedToday":2,"totalSessionsCompleted":7,"totalFocusTime":25200,"sessionHistory":[]}`

	tests := []struct {
		name      string
		lastDate  string
		wantToday int
	}{
		{name: "same day keeps count", lastDate: "2026-10-14", wantToday: 2},
		{name: "legacy same day keeps count", lastDate: "Wed Oct 14 2026", wantToday: 2},
		{name: "yesterday resets count", lastDate: "2026-10-13", wantToday: 0},
		{name: "missing date resets count", lastDate: "", wantToday: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed := map[string]string{KeyTimerState: stored}
			if tt.lastDate != "" {
				seed[KeyLastSessionDate] = tt.lastDate
			}
			f := newEngineFixture(t, seed)

			require.NoError(t, f.engine.Load(context.Background()))
			state := f.engine.State()
			assert.Equal(t, tt.wantToday, state.SessionsCompletedToday)
			assert.Equal(t, 7, state.TotalSessionsCompleted)
			assert.Equal(t, 25200, state.TotalFocusTimeSeconds)
			assert.Equal(t, domain.RunIdle, state.Run)
			assert.Equal(t, domain.FocusDuration, state.TimeRemainingSeconds)

			last := f.kv.Snapshot()[KeyLastSessionDate]
			if tt.wantToday == 0 {
				assert.Equal(t, "2026-10-14", last)
			} else {
				assert.Equal(t, tt.lastDate, last)
			}
		})
	}
}

func TestTimerEngine_LoadBackendFailure(t *testing.T) {
	kv := portsmocks.NewMockKeyValueStore(t)
	kv.EXPECT().Get(mock.Anything, KeyTimerState).Return("", false, domain.ErrStorageUnavailable)

	engine := NewTimerEngine(NewPersistedStore(kv), clock.NewManualScheduler(), nil, nil)
	err := engine.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.Equal(t, domain.NewTimerState(), engine.State())
}

func TestTimerEngine_LoadFailureNeverOverwritesStoredHistory(t *testing.T) {
	kv := portsmocks.NewMockKeyValueStore(t)
	kv.EXPECT().Get(mock.Anything, KeyTimerState).Return("", false, domain.ErrStorageUnavailable)

	engine := NewTimerEngine(NewPersistedStore(kv), clock.NewManualScheduler(), nil, nil,
		WithClock(func() time.Time { return testNow }))
	var failures []error
	engine.Subscribe(func(ev Event) {
		if ev.Type == EventPersistFailed {
			failures = append(failures, ev.Err)
		}
	})

	require.Error(t, engine.Load(context.Background()))
	engine.Start()
	for i := 0; i < domain.FocusDuration; i++ {
		engine.Tick()
	}

	// The session counts in memory, but nothing replaces the stored aggregate
	assert.Equal(t, 1, engine.State().TotalSessionsCompleted)
	require.Len(t, failures, 1)
	assert.ErrorIs(t, failures[0], domain.ErrStorageUnavailable)
	kv.AssertNotCalled(t, "Set", mock.Anything, KeyTimerState, mock.Anything)
}

func TestTimerEngine_LoadFailureMergesOnceReadable(t *testing.T) {
	stored := `{"sessionsCompletedToday":1,"totalSessionsCompleted":3,"totalFocusTime":10800,"sessionHistory":[{"date":"2026-10-14T07:00:00Z","mode":"focus","duration":3600}]}`
	kv := portsmocks.NewMockKeyValueStore(t)
	kv.EXPECT().Get(mock.Anything, KeyTimerState).Return("", false, domain.ErrStorageUnavailable).Once()
	kv.EXPECT().Get(mock.Anything, KeyTimerState).Return(stored, true, nil)
	kv.EXPECT().Get(mock.Anything, KeyLastSessionDate).Return("2026-10-14", true, nil)
	var saved string
	kv.EXPECT().Set(mock.Anything, KeyTimerState, mock.Anything).
		Run(func(_ context.Context, _ string, value string) { saved = value }).
		Return(nil)

	engine := NewTimerEngine(NewPersistedStore(kv), clock.NewManualScheduler(), nil, nil,
		WithClock(func() time.Time { return testNow }))
	require.Error(t, engine.Load(context.Background()))

	engine.Start()
	for i := 0; i < domain.FocusDuration; i++ {
		engine.Tick()
	}

	state := engine.State()
	assert.Equal(t, 2, state.SessionsCompletedToday)
	assert.Equal(t, 4, state.TotalSessionsCompleted)
	assert.Equal(t, 4*3600, state.TotalFocusTimeSeconds)
	require.Len(t, state.SessionHistory, 2)
	assert.Equal(t, testNow, state.SessionHistory[1].Timestamp)

	reloaded, err := NewPersistedStore(storage.NewMemoryStore(map[string]string{KeyTimerState: saved})).
		LoadTimerState(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, reloaded.TotalSessionsCompleted)
	assert.Len(t, reloaded.SessionHistory, 2)
}

func TestTimerEngine_ClearAllData(t *testing.T) {
	f := newEngineFixture(t, map[string]string{
		KeyTimerState:      `{"sessionsCompletedToday":1,"totalSessionsCompleted":3,"totalFocusTime":10800,"sessionHistory":[{"date":"2026-10-14T08:00:00Z","mode":"focus","duration":3600}]}`,
		KeyLastSessionDate: "2026-10-14",
		KeyWeeklyGoal:      "4",
	})
	ctx := context.Background()
	require.NoError(t, f.engine.Load(ctx))
	f.engine.Start()

	require.NoError(t, f.engine.ClearAllData(ctx))
	assert.Equal(t, domain.NewTimerState(), f.engine.State())
	assert.Zero(t, f.scheduler.Active())
	assert.Equal(t, map[string]string{KeyWeeklyGoal: "4"}, f.kv.Snapshot())

	// A fresh engine over the same store sees the zero aggregate
	again := NewTimerEngine(NewPersistedStore(f.kv), clock.NewManualScheduler(), nil, nil,
		WithClock(func() time.Time { return testNow }))
	require.NoError(t, again.Load(ctx))
	state := again.State()
	assert.Zero(t, state.TotalSessionsCompleted)
	assert.Zero(t, state.SessionsCompletedToday)
	assert.Empty(t, state.SessionHistory)

	// Derived statistics start over too; the goal survives
	stats, err := NewStatisticsService(NewPersistedStore(f.kv), locale.NewFormatter("en-US"),
		WithStatisticsClock(func() time.Time { return testNow })).Load(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Streak)
	assert.Zero(t, stats.TotalSessions)
	assert.Zero(t, stats.TotalFocusSeconds)
	assert.Zero(t, stats.SessionsToday)
	assert.Zero(t, stats.SessionsThisWeek)
	assert.Empty(t, stats.Days)
	assert.Equal(t, 4, stats.WeeklyGoal.TargetSessions)
}

func TestTimerEngine_ClearAllDataStoreFailure(t *testing.T) {
	f := newEngineFixture(t, nil)
	require.NoError(t, f.kv.Close())

	err := f.engine.ClearAllData(context.Background())
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.Equal(t, domain.NewTimerState(), f.engine.State())
	assert.Equal(t, 1, f.count(EventPersistFailed))
}

func TestTimerEngine_Subscribe(t *testing.T) {
	f := newEngineFixture(t, nil)
	calls := 0
	unsubscribe := f.engine.Subscribe(func(ev Event) {
		calls++
		assert.Equal(t, EventStateChanged, ev.Type)
	})

	f.engine.Start()
	f.scheduler.Advance(2)
	assert.Equal(t, 3, calls)

	unsubscribe()
	f.scheduler.Advance(2)
	assert.Equal(t, 3, calls)
}

func TestTimerEngine_StateIsACopy(t *testing.T) {
	f := newEngineFixture(t, map[string]string{
		KeyTimerState: `{"sessionHistory":[{"date":"2026-10-14T08:00:00Z","mode":"focus","duration":3600}]}`,
	})
	require.NoError(t, f.engine.Load(context.Background()))

	state := f.engine.State()
	state.SessionHistory[0].DurationSeconds = 1
	state.TimeRemainingSeconds = 5

	fresh := f.engine.State()
	assert.Equal(t, 3600, fresh.SessionHistory[0].DurationSeconds)
	assert.Equal(t, domain.FocusDuration, fresh.TimeRemainingSeconds)
}
