package ports

import "time"

// DateFormatter renders dates for display, keeping locale rules out of the core
type DateFormatter interface {
	// ShortDate renders day and month, plus the year when withYear is set
	ShortDate(t time.Time, withYear bool) string
	// TimeOfDay renders hours and minutes
	TimeOfDay(t time.Time) string
}
