package domain

import (
	"slices"
	"time"
)

// DayGroup is the set of records that fall on one calendar day
type DayGroup struct {
	Day          Day
	Records      []SessionRecord
	TotalSeconds int
}

// ComputeStreak counts consecutive calendar days, ending today, that have at
// least one record. A day without a record breaks the chain and today itself
// must have a record, otherwise the streak is 0.
func ComputeStreak(history []SessionRecord, today time.Time) int {
	if len(history) == 0 {
		return 0
	}

	days := distinctDays(history)
	expected := DayOf(today)
	streak := 0
	for _, day := range days {
		if expected.Before(day) {
			// Future-dated record, not part of a streak ending today
			continue
		}
		if day != expected {
			break
		}
		streak++
		expected = expected.AddDays(-1)
	}
	return streak
}

// GroupByDay partitions records by local calendar day. Groups are ordered
// newest day first; records keep their insertion order within a group.
func GroupByDay(history []SessionRecord) []DayGroup {
	index := make(map[Day]int)
	var groups []DayGroup
	for _, record := range history {
		day := DayOf(record.Timestamp)
		i, ok := index[day]
		if !ok {
			i = len(groups)
			index[day] = i
			groups = append(groups, DayGroup{Day: day})
		}
		groups[i].Records = append(groups[i].Records, record)
		groups[i].TotalSeconds += record.DurationSeconds
	}

	slices.SortStableFunc(groups, func(a, b DayGroup) int {
		return b.Day.Start().Compare(a.Day.Start())
	})
	return groups
}

// SessionsSince counts focus records with a timestamp at or after start
func SessionsSince(history []SessionRecord, start time.Time) int {
	count := 0
	for _, record := range history {
		if record.Mode == ModeFocus && !record.Timestamp.Before(start) {
			count++
		}
	}
	return count
}

// distinctDays returns the days that have records, newest first
func distinctDays(history []SessionRecord) []Day {
	seen := make(map[Day]struct{}, len(history))
	days := make([]Day, 0, len(history))
	for _, record := range history {
		day := DayOf(record.Timestamp)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	slices.SortFunc(days, func(a, b Day) int {
		return b.Start().Compare(a.Start())
	})
	return days
}
