package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDurationLong(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "0s"},
		{59, "59s"},
		{60, "1m"},
		{3600, "1h"},
		{3661, "1h 1m 1s"},
		{3605, "1h 5s"},
		{7260, "2h 1m"},
		{-5, "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDurationLong(tt.seconds))
		})
	}
}

func TestFormatDurationShort(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "0h 0m"},
		{59, "0h 0m"},
		{1500, "0h 25m"},
		{3600, "1h 0m"},
		{36000 + 45*60, "10h 45m"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDurationShort(tt.seconds))
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "60:00", FormatClock(FocusDuration))
	assert.Equal(t, "20:00", FormatClock(BreakDuration))
	assert.Equal(t, "00:09", FormatClock(9))
	assert.Equal(t, "59:59", FormatClock(3599))
	assert.Equal(t, "00:00", FormatClock(-1))
}

func TestWeeklyProgress(t *testing.T) {
	tests := []struct {
		name     string
		sessions int
		target   int
		expected float64
	}{
		{"partial", 3, 5, 60},
		{"clamped", 6, 5, 100},
		{"exact", 5, 5, 100},
		{"zero target", 3, 0, 0},
		{"negative target", 3, -2, 0},
		{"nothing done", 0, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, WeeklyProgress(tt.sessions, tt.target), 1e-9)
		})
	}
}
