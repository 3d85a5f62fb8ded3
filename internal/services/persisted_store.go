package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/renato0307/tempo/internal/domain"
	"github.com/renato0307/tempo/internal/logging"
	"github.com/renato0307/tempo/internal/ports"
)

// Storage keys, kept compatible with the browser widget's localStorage layout
const (
	KeyLastSessionDate = "lastSessionDate"
	KeyTimerState      = "timerState"
	KeyUserProfile     = "userProfile"
	KeyWeeklyGoal      = "weeklyGoalValue"
)

// legacyRecordLayout is how the browser widget wrote session dates
const legacyRecordLayout = "1/2/2006, 3:04:05 PM"

// timerStateDoc is the stored form of domain.PersistedState
type timerStateDoc struct {
	SessionHistory         []sessionDoc `json:"sessionHistory"`
	SessionsCompletedToday int          `json:"sessionsCompletedToday"`
	TotalFocusTime         int          `json:"totalFocusTime"`
	TotalSessionsCompleted int          `json:"totalSessionsCompleted"`
}

type sessionDoc struct {
	Date     string `json:"date"`
	Duration int    `json:"duration"`
	Mode     string `json:"mode"`
}

type profileDoc struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// PersistedStore gives typed access to the durable key-value state. Reads
// never fail on bad data: absent or malformed values fall back to defaults.
type PersistedStore struct {
	kv ports.KeyValueStore
}

// NewPersistedStore creates a PersistedStore over any key-value backend
func NewPersistedStore(kv ports.KeyValueStore) *PersistedStore {
	return &PersistedStore{kv: kv}
}

// LoadTimerState reads the aggregate counters and history. On a backend
// error the zero state is returned together with the error.
func (s *PersistedStore) LoadTimerState(ctx context.Context) (domain.PersistedState, error) {
	state := domain.PersistedState{SessionHistory: []domain.SessionRecord{}}

	raw, ok, err := s.kv.Get(ctx, KeyTimerState)
	if err != nil {
		return state, fmt.Errorf("failed to load timer state: %w", err)
	}
	if !ok {
		return state, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		logging.Logger.Warn("Malformed timer state, using defaults", "error", err)
		return state, nil
	}

	state.SessionsCompletedToday = intField(fields, "sessionsCompletedToday")
	state.TotalSessionsCompleted = intField(fields, "totalSessionsCompleted")
	state.TotalFocusTimeSeconds = intField(fields, "totalFocusTime")
	state.SessionHistory = historyField(fields["sessionHistory"])
	return state, nil
}

// SaveTimerState writes only the persisted subset
func (s *PersistedStore) SaveTimerState(ctx context.Context, state domain.PersistedState) error {
	doc := timerStateDoc{
		SessionHistory:         make([]sessionDoc, 0, len(state.SessionHistory)),
		SessionsCompletedToday: state.SessionsCompletedToday,
		TotalFocusTime:         state.TotalFocusTimeSeconds,
		TotalSessionsCompleted: state.TotalSessionsCompleted,
	}
	for _, r := range state.SessionHistory {
		doc.SessionHistory = append(doc.SessionHistory, sessionDoc{
			Date:     r.Timestamp.Format(time.RFC3339),
			Duration: r.DurationSeconds,
			Mode:     string(r.Mode),
		})
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode timer state: %w", err)
	}
	if err := s.kv.Set(ctx, KeyTimerState, string(data)); err != nil {
		return fmt.Errorf("failed to save timer state: %w", err)
	}
	return nil
}

// LastSessionDate returns the stored last-active day; ok is false when it is
// absent or unreadable
func (s *PersistedStore) LastSessionDate(ctx context.Context) (domain.Day, bool, error) {
	raw, ok, err := s.kv.Get(ctx, KeyLastSessionDate)
	if err != nil {
		return domain.Day{}, false, fmt.Errorf("failed to load last session date: %w", err)
	}
	if !ok {
		return domain.Day{}, false, nil
	}
	day, err := domain.ParseDay(strings.TrimSpace(raw))
	if err != nil {
		logging.Logger.Warn("Malformed last session date, ignoring", "value", raw)
		return domain.Day{}, false, nil
	}
	return day, true, nil
}

// SetLastSessionDate records day as the last-active date
func (s *PersistedStore) SetLastSessionDate(ctx context.Context, day domain.Day) error {
	if err := s.kv.Set(ctx, KeyLastSessionDate, day.Key()); err != nil {
		return fmt.Errorf("failed to save last session date: %w", err)
	}
	return nil
}

// LoadProfile reads the user profile; an absent profile is empty
func (s *PersistedStore) LoadProfile(ctx context.Context) (domain.Profile, error) {
	raw, ok, err := s.kv.Get(ctx, KeyUserProfile)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("failed to load profile: %w", err)
	}
	if !ok {
		return domain.Profile{}, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		logging.Logger.Warn("Malformed profile, using defaults", "error", err)
		return domain.Profile{}, nil
	}
	return domain.Profile{
		Email: stringField(fields, "email"),
		Name:  stringField(fields, "name"),
	}, nil
}

// SaveProfile writes the user profile
func (s *PersistedStore) SaveProfile(ctx context.Context, profile domain.Profile) error {
	data, err := json.Marshal(profileDoc{Email: profile.Email, Name: profile.Name})
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := s.kv.Set(ctx, KeyUserProfile, string(data)); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// LoadWeeklyGoal reads the weekly goal; absent or invalid values yield the default
func (s *PersistedStore) LoadWeeklyGoal(ctx context.Context) (domain.WeeklyGoal, error) {
	raw, ok, err := s.kv.Get(ctx, KeyWeeklyGoal)
	if err != nil {
		return domain.DefaultWeeklyGoal(), fmt.Errorf("failed to load weekly goal: %w", err)
	}
	if !ok {
		return domain.DefaultWeeklyGoal(), nil
	}

	target, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		logging.Logger.Warn("Malformed weekly goal, using default", "value", raw)
		return domain.DefaultWeeklyGoal(), nil
	}
	goal, err := domain.NewWeeklyGoal(target)
	if err != nil {
		logging.Logger.Warn("Stored weekly goal out of range, using default", "value", target)
		return domain.DefaultWeeklyGoal(), nil
	}
	return goal, nil
}

// SaveWeeklyGoal writes the weekly goal as an integer string
func (s *PersistedStore) SaveWeeklyGoal(ctx context.Context, goal domain.WeeklyGoal) error {
	if err := s.kv.Set(ctx, KeyWeeklyGoal, strconv.Itoa(goal.TargetSessions)); err != nil {
		return fmt.Errorf("failed to save weekly goal: %w", err)
	}
	return nil
}

// ClearAll removes the timer state and last-active date in one backend call.
// Profile and weekly goal are kept.
func (s *PersistedStore) ClearAll(ctx context.Context) error {
	if err := s.kv.Remove(ctx, KeyTimerState, KeyLastSessionDate); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}
	logging.Logger.Info("Cleared timer state and last session date")
	return nil
}

// intField decodes a numeric field, defaulting to 0 when missing or wrong-typed
func intField(fields map[string]json.RawMessage, name string) int {
	raw, ok := fields[name]
	if !ok {
		return 0
	}
	return decodeInt(raw, name)
}

func decodeInt(raw json.RawMessage, name string) int {
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		if string(raw) != "null" {
			logging.Logger.Warn("Ignoring non-numeric field", "field", name, "value", string(raw))
		}
		return 0
	}
	if f < 0 {
		return 0
	}
	// float64(math.MaxInt) rounds up to 2^63, which no longer fits an int
	if f >= float64(math.MaxInt) {
		logging.Logger.Warn("Ignoring out-of-range field", "field", name, "value", string(raw))
		return 0
	}
	// Fractions are dropped; counters and seconds are whole numbers
	return int(f)
}

// stringField decodes a string field, defaulting to "" when missing or wrong-typed
func stringField(fields map[string]json.RawMessage, name string) string {
	raw, ok := fields[name]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		logging.Logger.Warn("Ignoring non-string field", "field", name, "value", string(raw))
		return ""
	}
	return s
}

// historyField decodes session records one by one; unreadable entries are dropped
func historyField(raw json.RawMessage) []domain.SessionRecord {
	history := []domain.SessionRecord{}
	if len(raw) == 0 {
		return history
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		logging.Logger.Warn("Malformed session history, using empty history", "error", err)
		return history
	}

	for i, entry := range entries {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(entry, &fields); err != nil {
			logging.Logger.Warn("Dropping malformed session record", "index", i)
			continue
		}
		ts, ok := parseRecordDate(stringField(fields, "date"))
		if !ok {
			logging.Logger.Warn("Dropping session record with unreadable date", "index", i)
			continue
		}
		history = append(history, domain.SessionRecord{
			DurationSeconds: intField(fields, "duration"),
			Mode:            domain.ParseMode(stringField(fields, "mode")),
			Timestamp:       ts,
		})
	}
	return history
}

// parseRecordDate accepts RFC 3339 and the widget's en-US locale string
func parseRecordDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation(legacyRecordLayout, s, time.Local); err == nil {
		return t, true
	}
	return time.Time{}, false
}
