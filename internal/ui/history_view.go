package ui

import (
	"fmt"
	"strings"

	"github.com/renato0307/tempo/internal/domain"
	"github.com/renato0307/tempo/internal/services"
	"github.com/renato0307/tempo/internal/theme"
)

// emptyHistoryText is shown before the first completed session
const emptyHistoryText = "No sessions recorded yet. Start your first session!"

// recordLabel returns the history label of a record's mode
func recordLabel(mode domain.Mode) string {
	if mode == domain.ModeBreak {
		return "☕ Break"
	}
	return "🎯 Focus"
}

// RenderHistory renders day groups newest first, each record with its relative
// day, time of day and detailed duration. limit caps the number of days; 0 shows all.
func RenderHistory(days []domain.DayGroup, stats *services.StatisticsService, limit int) string {
	if len(days) == 0 {
		return theme.HistoryMetaStyle.Render(emptyHistoryText) + "\n"
	}
	if limit > 0 && len(days) > limit {
		days = days[:limit]
	}

	var b strings.Builder
	for i, group := range days {
		if i > 0 {
			b.WriteString("\n")
		}
		header := stats.FormatRelativeDay(group.Day.Start())
		fmt.Fprintf(&b, "%s %s\n",
			theme.HistoryDayStyle.Render(header),
			theme.HistoryTotalStyle.Render("("+domain.FormatDurationLong(group.TotalSeconds)+")"))

		for _, record := range group.Records {
			meta := stats.FormatRelativeDay(record.Timestamp) + " · " + stats.FormatTimeOfDay(record.Timestamp)
			fmt.Fprintf(&b, "  %-10s %s  %s\n",
				recordLabel(record.Mode),
				theme.HistoryMetaStyle.Render(meta),
				theme.StatValueStyle.Render(domain.FormatDurationLong(record.DurationSeconds)))
		}
	}
	return b.String()
}
