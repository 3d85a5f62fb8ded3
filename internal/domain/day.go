package domain

import (
	"fmt"
	"time"
)

// dayKeyLayout is the ISO form used for day keys and the last-active date
const dayKeyLayout = "2006-01-02"

// legacyDayLayout matches dates written by the browser version of the timer
const legacyDayLayout = "Mon Jan 02 2006"

// Day is a calendar day in the local time zone
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf returns the local calendar day of t
func DayOf(t time.Time) Day {
	y, m, d := t.Local().Date()
	return Day{Year: y, Month: m, Day: d}
}

// ParseDay reads a day key, accepting the legacy long form as well
func ParseDay(s string) (Day, error) {
	for _, layout := range []string{dayKeyLayout, legacyDayLayout} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return DayOf(t), nil
		}
	}
	return Day{}, fmt.Errorf("unrecognized day %q", s)
}

// Start returns local midnight at the beginning of the day
func (d Day) Start() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// AddDays moves the day by n calendar days, crossing month and year boundaries
func (d Day) AddDays(n int) Day {
	return DayOf(d.Start().AddDate(0, 0, n))
}

// Before reports whether d is strictly earlier than other
func (d Day) Before(other Day) bool {
	return d.Start().Before(other.Start())
}

// Equal reports whether d and other are the same calendar day
func (d Day) Equal(other Day) bool {
	return d == other
}

// Key returns the ISO day key (2006-01-02)
func (d Day) Key() string {
	return d.Start().Format(dayKeyLayout)
}

func (d Day) String() string { return d.Key() }
