package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	json "github.com/goccy/go-json"

	"github.com/renato0307/tempo/internal/domain"
	"github.com/renato0307/tempo/internal/logging"
	"github.com/renato0307/tempo/internal/services"
	"github.com/renato0307/tempo/internal/ui"
)

// StatsCmd shows focus statistics
type StatsCmd struct {
	Days   int    `help:"Number of history days to show (0 = all)" default:"7"`
	Format string `help:"Output format (table or json)" default:"table" enum:"table,json"`
}

type statsRecordJSON struct {
	DurationSeconds int       `json:"duration_seconds"`
	Mode            string    `json:"mode"`
	Timestamp       time.Time `json:"timestamp"`
}

type statsDayJSON struct {
	Date         string            `json:"date"`
	Records      []statsRecordJSON `json:"records"`
	TotalSeconds int               `json:"total_seconds"`
}

type statsJSON struct {
	Days              []statsDayJSON `json:"days"`
	Email             string         `json:"email,omitempty"`
	Name              string         `json:"name,omitempty"`
	SessionsThisWeek  int            `json:"sessions_this_week"`
	SessionsToday     int            `json:"sessions_today"`
	Streak            int            `json:"streak"`
	TotalFocusSeconds int            `json:"total_focus_seconds"`
	TotalSessions     int            `json:"total_sessions"`
	WeeklyGoal        int            `json:"weekly_goal"`
	WeeklyProgress    float64        `json:"weekly_progress"`
}

// Run executes the stats command
func (s *StatsCmd) Run(cli *CLI) error {
	container := cli.Container
	stats, err := container.StatisticsService.Load(context.Background())
	if err != nil {
		// The snapshot falls back to defaults; show it anyway
		logging.Logger.Warn("Statistics incomplete", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: some statistics could not be read: %v\n", err)
	}

	switch s.Format {
	case "json":
		return renderStatsJSON(os.Stdout, stats, s.Days)
	default:
		renderStatsTable(os.Stdout, stats, container.StatisticsService, s.Days)
		return nil
	}
}

// renderStatsTable displays statistics as aligned label/value rows
func renderStatsTable(w io.Writer, stats services.Statistics, service *services.StatisticsService, days int) {
	if !stats.Profile.IsEmpty() {
		who := stats.Profile.Name
		if stats.Profile.Email != "" {
			who += " <" + stats.Profile.Email + ">"
		}
		fmt.Fprintf(w, "Focus statistics for %s\n\n", who)
	} else {
		fmt.Fprintln(w, "Focus statistics")
		fmt.Fprintln(w)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Sessions today\t%s\n", humanize.Comma(int64(stats.SessionsToday)))
	fmt.Fprintf(tw, "Total sessions\t%s\n", humanize.Comma(int64(stats.TotalSessions)))
	fmt.Fprintf(tw, "Total focus time\t%s\n", domain.FormatDurationLong(stats.TotalFocusSeconds))
	fmt.Fprintf(tw, "Current streak\t%s days\n", humanize.Comma(int64(stats.Streak)))
	fmt.Fprintf(tw, "Weekly goal\t%d/%d sessions (%.0f%%)\n",
		stats.SessionsThisWeek, stats.WeeklyGoal.TargetSessions, stats.WeeklyProgress)
	tw.Flush()

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Session History")
	fmt.Fprint(w, ui.RenderHistory(stats.Days, service, days))
}

// renderStatsJSON writes the statistics snapshot as indented JSON
func renderStatsJSON(w io.Writer, stats services.Statistics, days int) error {
	groups := stats.Days
	if days > 0 && len(groups) > days {
		groups = groups[:days]
	}

	out := statsJSON{
		Days:              make([]statsDayJSON, 0, len(groups)),
		Email:             stats.Profile.Email,
		Name:              stats.Profile.Name,
		SessionsThisWeek:  stats.SessionsThisWeek,
		SessionsToday:     stats.SessionsToday,
		Streak:            stats.Streak,
		TotalFocusSeconds: stats.TotalFocusSeconds,
		TotalSessions:     stats.TotalSessions,
		WeeklyGoal:        stats.WeeklyGoal.TargetSessions,
		WeeklyProgress:    stats.WeeklyProgress,
	}
	for _, group := range groups {
		day := statsDayJSON{
			Date:         group.Day.Key(),
			Records:      make([]statsRecordJSON, 0, len(group.Records)),
			TotalSeconds: group.TotalSeconds,
		}
		for _, record := range group.Records {
			day.Records = append(day.Records, statsRecordJSON{
				DurationSeconds: record.DurationSeconds,
				Mode:            string(record.Mode),
				Timestamp:       record.Timestamp,
			})
		}
		out.Days = append(out.Days, day)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}
