package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tempo/internal/adapters/locale"
	"github.com/renato0307/tempo/internal/adapters/storage"
	"github.com/renato0307/tempo/internal/config"
	"github.com/renato0307/tempo/internal/domain"
	"github.com/renato0307/tempo/internal/services"
	"github.com/renato0307/tempo/internal/ui"
)

func sampleStatistics() services.Statistics {
	ts := time.Now()
	record := domain.SessionRecord{DurationSeconds: 3600, Mode: domain.ModeFocus, Timestamp: ts}
	return services.Statistics{
		Days: []domain.DayGroup{
			{Day: domain.DayOf(ts), Records: []domain.SessionRecord{record}, TotalSeconds: 3600},
		},
		Profile:           domain.Profile{Email: "ana@example.com", Name: "Ana"},
		SessionsThisWeek:  1,
		SessionsToday:     1,
		Streak:            1,
		TotalFocusSeconds: 1234 * 3600,
		TotalSessions:     1234,
		WeeklyGoal:        domain.WeeklyGoal{TargetSessions: 4},
		WeeklyProgress:    25,
	}
}

func TestRenderStatsTable(t *testing.T) {
	store := services.NewPersistedStore(storage.NewMemoryStore(nil))
	service := services.NewStatisticsService(store, locale.NewFormatter("en-US"))

	var buf bytes.Buffer
	renderStatsTable(&buf, sampleStatistics(), service, 7)
	out := buf.String()

	assert.Contains(t, out, "Focus statistics for Ana <ana@example.com>")
	assert.Contains(t, out, "1,234")
	assert.Contains(t, out, "1/4 sessions (25%)")
	assert.Contains(t, out, "Session History")
	assert.Contains(t, out, "Today")
}

func TestRenderStatsJSON(t *testing.T) {
	stats := sampleStatistics()
	stats.Days = append(stats.Days, domain.DayGroup{Day: domain.DayOf(time.Now()).AddDays(-1)})

	var buf bytes.Buffer
	require.NoError(t, renderStatsJSON(&buf, stats, 1))
	out := buf.String()

	assert.Contains(t, out, `"total_sessions": 1234`)
	assert.Contains(t, out, `"weekly_goal": 4`)
	assert.Contains(t, out, `"mode": "focus"`)
	assert.Contains(t, out, `"date": "`+domain.DayOf(time.Now()).Key()+`"`)
	assert.NotContains(t, out, domain.DayOf(time.Now()).AddDays(-1).Key())
}

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	printProfile(&buf, domain.Profile{})
	assert.Contains(t, buf.String(), "No profile set")

	buf.Reset()
	printProfile(&buf, domain.Profile{Name: "Ana"})
	assert.Contains(t, buf.String(), "Name:  Ana")
	assert.Contains(t, buf.String(), "Email: -")
}

func TestParseKeyValues(t *testing.T) {
	assert.Equal(t, []string{"s", "enter"}, parseKeyValues(" s , enter ,"))
	assert.Empty(t, parseKeyValues(" , "))
}

func TestWriteKeyBindingsTable_GroupsByCategory(t *testing.T) {
	custom := config.KeyBindingsConfig{"start": {"enter"}}

	var buf bytes.Buffer
	writeKeyBindingsTable(&buf, "/tmp/settings.json", custom)
	out := buf.String()

	assert.Contains(t, out, "settings file: /tmp/settings.json")
	timer := strings.Index(out, "\nTimer\n")
	stats := strings.Index(out, "\nStatistics\n")
	app := strings.Index(out, "\nApplication\n")
	require.True(t, timer >= 0 && stats >= 0 && app >= 0, out)
	assert.Less(t, timer, stats)
	assert.Less(t, stats, app)

	assert.Less(t, strings.Index(out, "  pause"), stats)
	assert.Greater(t, strings.Index(out, "  clear_data"), stats)
	assert.Greater(t, strings.Index(out, "  quit"), app)
	assert.Contains(t, out, "enter (default s)")
}

func TestWriteKeyBindingsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeKeyBindingsJSON(&buf, config.KeyBindingsConfig{"history": {"H", "tab"}}))

	var got map[string]keyBindingJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Len(t, got, len(ui.AllKeyDefinitions))
	assert.Equal(t, "Statistics", got["history"].Group)
	assert.Equal(t, []string{"H", "tab"}, got["history"].Custom)
	assert.Equal(t, []string{"h"}, got["history"].Default)
	assert.Equal(t, "Timer", got["start"].Group)
	assert.Empty(t, got["start"].Custom)
}

func TestContainerOptions(t *testing.T) {
	off := false
	tests := []struct {
		name              string
		cli               CLI
		wantNotifications bool
		wantSound         bool
	}{
		{
			name:              "defaults enable everything",
			cli:               CLI{},
			wantNotifications: true,
			wantSound:         true,
		},
		{
			name:              "flags disable",
			cli:               CLI{Run: RunCmd{NoNotifications: true, NoSound: true}},
			wantNotifications: false,
			wantSound:         false,
		},
		{
			name:              "settings disable",
			cli:               CLI{settings: &config.Settings{Locale: "de-DE", Notifications: &off, Sound: &off}},
			wantNotifications: false,
			wantSound:         false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.cli.containerOptions()
			assert.Equal(t, tt.wantNotifications, opts.Notifications)
			assert.Equal(t, tt.wantSound, opts.Sound)
			assert.NotEmpty(t, opts.DBPath)
		})
	}
}

func TestNewContainer_SQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "state.db")
	container, err := NewContainer(ContainerOptions{DBPath: dbPath, Locale: "en-GB"})
	require.NoError(t, err)
	defer container.Close()

	assert.NoError(t, container.StorageErr)
	_, err = container.ProfileService.SetWeeklyGoal(context.Background(), "6")
	require.NoError(t, err)

	goal, err := container.ProfileService.GetWeeklyGoal(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, goal.TargetSessions)
	assert.FileExists(t, dbPath)
}

func TestNewContainer_FallsBackToMemory(t *testing.T) {
	// A regular file where the database directory should be
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	container, err := NewContainer(ContainerOptions{DBPath: filepath.Join(blocker, "state.db")})
	require.NoError(t, err)
	defer container.Close()

	assert.Error(t, container.StorageErr)

	// The timer stays usable on the memory store
	require.NoError(t, container.Engine.Load(context.Background()))
	container.Engine.Start()
	assert.True(t, container.Engine.State().IsRunning())
	container.Engine.Pause()
}
