package services

import (
	"context"
	"time"

	"github.com/jinzhu/now"

	"github.com/renato0307/tempo/internal/domain"
	"github.com/renato0307/tempo/internal/logging"
	"github.com/renato0307/tempo/internal/ports"
)

// weekConfig makes weeks start on Monday 00:00 local time
var weekConfig = &now.Config{WeekStartDay: time.Monday}

// Statistics is a derived, read-only view of the persisted state
type Statistics struct {
	Days              []domain.DayGroup
	Profile           domain.Profile
	SessionsThisWeek  int
	SessionsToday     int
	Streak            int
	TotalFocusSeconds int
	TotalSessions     int
	WeeklyGoal        domain.WeeklyGoal
	WeeklyProgress    float64
}

// StatisticsService derives statistics from the PersistedStore. It never writes.
type StatisticsService struct {
	formatter ports.DateFormatter
	now       func() time.Time
	store     *PersistedStore
}

// StatisticsOption customizes a StatisticsService
type StatisticsOption func(*StatisticsService)

// WithStatisticsClock replaces time.Now, mainly for tests
func WithStatisticsClock(now func() time.Time) StatisticsOption {
	return func(s *StatisticsService) { s.now = now }
}

// NewStatisticsService creates a StatisticsService
func NewStatisticsService(store *PersistedStore, formatter ports.DateFormatter, opts ...StatisticsOption) *StatisticsService {
	s := &StatisticsService{
		formatter: formatter,
		now:       time.Now,
		store:     store,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the stored state and derives a fresh snapshot. Read failures
// degrade to defaults; the first one is returned alongside the snapshot.
func (s *StatisticsService) Load(ctx context.Context) (Statistics, error) {
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	persisted, err := s.store.LoadTimerState(ctx)
	keep(err)

	today := domain.DayOf(s.now())
	last, ok, err := s.store.LastSessionDate(ctx)
	keep(err)
	if !ok || !last.Equal(today) {
		persisted.SessionsCompletedToday = 0
	}

	goal, err := s.store.LoadWeeklyGoal(ctx)
	keep(err)
	profile, err := s.store.LoadProfile(ctx)
	keep(err)

	if firstErr != nil {
		logging.Logger.Warn("Statistics loaded with defaults", "error", firstErr)
	}

	stats := s.Compute(persisted, goal)
	stats.Profile = profile
	return stats, firstErr
}

// Compute derives statistics from an in-memory state, as used by the TUI
func (s *StatisticsService) Compute(state domain.PersistedState, goal domain.WeeklyGoal) Statistics {
	current := s.now()
	week := SessionsThisWeek(state.SessionHistory, current)
	return Statistics{
		Days:              domain.GroupByDay(state.SessionHistory),
		SessionsThisWeek:  week,
		SessionsToday:     state.SessionsCompletedToday,
		Streak:            domain.ComputeStreak(state.SessionHistory, current),
		TotalFocusSeconds: state.TotalFocusTimeSeconds,
		TotalSessions:     state.TotalSessionsCompleted,
		WeeklyGoal:        goal,
		WeeklyProgress:    domain.WeeklyProgress(week, goal.TargetSessions),
	}
}

// FormatRelativeDay renders ts as "Today", "Yesterday" or a short date
func (s *StatisticsService) FormatRelativeDay(ts time.Time) string {
	return FormatRelativeDay(ts, s.now(), s.formatter)
}

// FormatTimeOfDay renders the clock time of a record
func (s *StatisticsService) FormatTimeOfDay(ts time.Time) string {
	return s.formatter.TimeOfDay(ts)
}

// SessionsThisWeek counts focus records since Monday 00:00 of the week containing t
func SessionsThisWeek(history []domain.SessionRecord, t time.Time) int {
	return domain.SessionsSince(history, weekConfig.With(t.Local()).BeginningOfWeek())
}

// FormatRelativeDay renders ts relative to today. The year is shown only when
// it differs from today's.
func FormatRelativeDay(ts, today time.Time, formatter ports.DateFormatter) string {
	day := domain.DayOf(ts)
	current := domain.DayOf(today)
	switch {
	case day.Equal(current):
		return "Today"
	case day.Equal(current.AddDays(-1)):
		return "Yesterday"
	default:
		return formatter.ShortDate(ts, day.Year != current.Year)
	}
}
