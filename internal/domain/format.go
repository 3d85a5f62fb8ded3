package domain

import (
	"fmt"
	"strings"
)

// FormatClock renders remaining seconds as MM:SS
func FormatClock(seconds int) string {
	seconds = max(seconds, 0)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatDurationShort renders aggregate totals as "{h}h {m}m"; hours are never omitted
func FormatDurationShort(seconds int) string {
	seconds = max(seconds, 0)
	return fmt.Sprintf("%dh %dm", seconds/3600, (seconds%3600)/60)
}

// FormatDurationLong renders the non-zero hour, minute and second components.
// Zero renders as "0s".
func FormatDurationLong(seconds int) string {
	seconds = max(seconds, 0)
	hours := seconds / 3600
	mins := (seconds % 3600) / 60
	secs := seconds % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if mins > 0 {
		parts = append(parts, fmt.Sprintf("%dm", mins))
	}
	if secs > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", secs))
	}
	return strings.Join(parts, " ")
}

// WeeklyProgress returns completed/target as a percentage capped at 100.
// A non-positive target yields 0.
func WeeklyProgress(sessions, target int) float64 {
	if target <= 0 {
		return 0
	}
	return min(100, 100*float64(sessions)/float64(target))
}
