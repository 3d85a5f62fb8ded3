package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimerState_ZeroState(t *testing.T) {
	state := NewTimerState()

	assert.Equal(t, RunIdle, state.Run)
	assert.Equal(t, ModeFocus, state.Mode)
	assert.Equal(t, FocusDuration, state.TimeRemainingSeconds)
	assert.False(t, state.IsRunning())
	assert.False(t, state.IsPaused())
	assert.NotNil(t, state.SessionHistory)
	assert.Empty(t, state.SessionHistory)
	assert.Zero(t, state.TotalSessionsCompleted)
}

func TestRestoreTimerState_KeepsAggregatesOnly(t *testing.T) {
	record := SessionRecord{DurationSeconds: FocusDuration, Mode: ModeFocus, Timestamp: time.Now()}
	persisted := PersistedState{
		SessionHistory:         []SessionRecord{record},
		SessionsCompletedToday: 2,
		TotalFocusTimeSeconds:  7200,
		TotalSessionsCompleted: 2,
	}

	state := RestoreTimerState(persisted)

	assert.Equal(t, RunIdle, state.Run)
	assert.Equal(t, ModeFocus, state.Mode)
	assert.Equal(t, FocusDuration, state.TimeRemainingSeconds)
	assert.Equal(t, 2, state.SessionsCompletedToday)
	assert.Equal(t, 7200, state.TotalFocusTimeSeconds)
	require.Len(t, state.SessionHistory, 1)

	// Restored history must not alias the caller's slice
	persisted.SessionHistory[0].DurationSeconds = 1
	assert.Equal(t, FocusDuration, state.SessionHistory[0].DurationSeconds)
}

func TestTimerState_RunStateFlags(t *testing.T) {
	tests := []struct {
		run     RunState
		running bool
		paused  bool
		status  string
	}{
		{RunIdle, false, false, "Ready to start"},
		{RunRunning, true, false, "In progress..."},
		{RunPaused, false, true, "Paused"},
	}

	for _, tt := range tests {
		t.Run(string(tt.run), func(t *testing.T) {
			state := NewTimerState()
			state.Run = tt.run
			assert.Equal(t, tt.running, state.IsRunning())
			assert.Equal(t, tt.paused, state.IsPaused())
			assert.Equal(t, tt.status, state.StatusText())
		})
	}
}

func TestIntervalProgress(t *testing.T) {
	assert.InDelta(t, 0.0, IntervalProgress(ModeFocus, FocusDuration), 1e-9)
	assert.InDelta(t, 0.5, IntervalProgress(ModeFocus, FocusDuration/2), 1e-9)
	assert.InDelta(t, 1.0, IntervalProgress(ModeBreak, 0), 1e-9)
	assert.InDelta(t, 0.25, IntervalProgress(ModeBreak, 900), 1e-9)
	assert.InDelta(t, 0.0, IntervalProgress(ModeBreak, BreakDuration+10), 1e-9)
}

func TestMode(t *testing.T) {
	assert.Equal(t, 3600, ModeFocus.Duration())
	assert.Equal(t, 1200, ModeBreak.Duration())
	assert.Equal(t, ModeBreak, ModeFocus.Next())
	assert.Equal(t, ModeFocus, ModeBreak.Next())
	assert.Equal(t, "Focus Time", ModeFocus.Label())
	assert.Equal(t, "Break Time", ModeBreak.Label())
	assert.Equal(t, ModeBreak, ParseMode("break"))
	assert.Equal(t, ModeFocus, ParseMode(""))
	assert.Equal(t, ModeFocus, ParseMode("focus"))
}

func TestParseDay(t *testing.T) {
	expected := Day{Year: 2026, Month: time.October, Day: 14}

	iso, err := ParseDay("2026-10-14")
	require.NoError(t, err)
	assert.Equal(t, expected, iso)

	legacy, err := ParseDay("Wed Oct 14 2026")
	require.NoError(t, err)
	assert.Equal(t, expected, legacy)

	_, err = ParseDay("yesterday")
	assert.Error(t, err)
}

func TestDay_AddDays(t *testing.T) {
	day := Day{Year: 2026, Month: time.January, Day: 1}

	assert.Equal(t, Day{Year: 2025, Month: time.December, Day: 31}, day.AddDays(-1))
	assert.Equal(t, "2026-01-08", day.AddDays(7).Key())
	assert.True(t, day.AddDays(-1).Before(day))
	assert.False(t, day.Before(day))
}

func TestNewWeeklyGoal(t *testing.T) {
	goal, err := NewWeeklyGoal(4)
	require.NoError(t, err)
	assert.Equal(t, 4, goal.TargetSessions)

	_, err = NewWeeklyGoal(0)
	assert.ErrorIs(t, err, ErrInvalidGoal)

	_, err = NewWeeklyGoal(-3)
	assert.ErrorIs(t, err, ErrInvalidGoal)

	assert.Equal(t, DefaultWeeklyTarget, DefaultWeeklyGoal().TargetSessions)
}
