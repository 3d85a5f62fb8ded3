package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func focusAt(t time.Time) SessionRecord {
	return SessionRecord{DurationSeconds: FocusDuration, Mode: ModeFocus, Timestamp: t}
}

func TestComputeStreak(t *testing.T) {
	today := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.Local)
	daysAgo := func(n int) time.Time { return today.AddDate(0, 0, -n) }

	tests := []struct {
		name     string
		history  []SessionRecord
		expected int
	}{
		{"empty history", nil, 0},
		{"only today", []SessionRecord{focusAt(today)}, 1},
		{"today missing", []SessionRecord{focusAt(daysAgo(1)), focusAt(daysAgo(2))}, 0},
		{"gap breaks chain", []SessionRecord{focusAt(today), focusAt(daysAgo(1)), focusAt(daysAgo(2)), focusAt(daysAgo(4))}, 3},
		{"several records per day", []SessionRecord{focusAt(daysAgo(1)), focusAt(today), focusAt(today.Add(-time.Hour)), focusAt(daysAgo(1))}, 2},
		{"unordered input", []SessionRecord{focusAt(daysAgo(2)), focusAt(today), focusAt(daysAgo(1))}, 3},
		{"future record ignored", []SessionRecord{focusAt(today.AddDate(0, 0, 1)), focusAt(today)}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComputeStreak(tt.history, today))
		})
	}
}

func TestComputeStreak_CrossesMonthBoundary(t *testing.T) {
	today := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.Local)
	history := []SessionRecord{
		focusAt(today),
		focusAt(time.Date(2026, time.February, 28, 22, 0, 0, 0, time.Local)),
		focusAt(time.Date(2026, time.February, 27, 8, 0, 0, 0, time.Local)),
	}

	assert.Equal(t, 3, ComputeStreak(history, today))
}

func TestComputeStreak_ZeroWhenNoRecordToday(t *testing.T) {
	today := time.Date(2026, time.June, 5, 12, 0, 0, 0, time.Local)
	history := make([]SessionRecord, 0, 30)
	for i := 1; i <= 30; i++ {
		history = append(history, focusAt(today.AddDate(0, 0, -i)))
	}

	assert.Zero(t, ComputeStreak(history, today))
}

func TestGroupByDay(t *testing.T) {
	day1 := time.Date(2026, time.April, 1, 9, 0, 0, 0, time.Local)
	day2 := time.Date(2026, time.April, 3, 9, 0, 0, 0, time.Local)
	first := focusAt(day1)
	second := focusAt(day1.Add(2 * time.Hour))
	third := focusAt(day2)

	groups := GroupByDay([]SessionRecord{first, second, third})

	require.Len(t, groups, 2)
	assert.Equal(t, DayOf(day2), groups[0].Day)
	assert.Equal(t, []SessionRecord{third}, groups[0].Records)
	assert.Equal(t, DayOf(day1), groups[1].Day)
	assert.Equal(t, []SessionRecord{first, second}, groups[1].Records)
	assert.Equal(t, 2*FocusDuration, groups[1].TotalSeconds)
}

func TestGroupByDay_Empty(t *testing.T) {
	assert.Empty(t, GroupByDay(nil))
}

func TestSessionsSince(t *testing.T) {
	start := time.Date(2026, time.April, 6, 0, 0, 0, 0, time.Local)
	history := []SessionRecord{
		focusAt(start.Add(-time.Minute)),
		focusAt(start),
		focusAt(start.Add(48 * time.Hour)),
		{DurationSeconds: BreakDuration, Mode: ModeBreak, Timestamp: start.Add(time.Hour)},
	}

	assert.Equal(t, 2, SessionsSince(history, start))
}
