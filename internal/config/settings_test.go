package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFile(t *testing.T) {
	t.Setenv("TEMPO_HOME", t.TempDir())

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Nil(t, settings.Debug)
	assert.True(t, settings.SoundEnabled())
	assert.True(t, settings.NotificationsEnabled())
}

func TestLoadSettings_Values(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TEMPO_HOME", home)
	data := `{"debug":true,"sound":false,"locale":"en-GB","max_log_files":5,"keys":{"start":"enter","help":["?","f1"]}}`
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(data), 0644))

	settings, err := LoadSettings()
	require.NoError(t, err)
	require.NotNil(t, settings.Debug)
	assert.True(t, *settings.Debug)
	assert.False(t, settings.SoundEnabled())
	assert.True(t, settings.NotificationsEnabled())
	assert.Equal(t, "en-GB", settings.Locale)
	require.NotNil(t, settings.MaxLogFiles)
	assert.Equal(t, 5, *settings.MaxLogFiles)
	assert.Equal(t, KeyBindingValue{"enter"}, settings.Keys["start"])
	assert.Equal(t, KeyBindingValue{"?", "f1"}, settings.Keys["help"])
}

func TestLoadSettings_Invalid(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TEMPO_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte("{"), 0644))

	_, err := LoadSettings()
	assert.ErrorContains(t, err, "invalid settings.json")
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested")
	t.Setenv("TEMPO_HOME", home)
	off := false

	require.NoError(t, SaveSettings(&Settings{Notifications: &off, MetricsAddr: ":9477"}))
	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.False(t, settings.NotificationsEnabled())
	assert.Equal(t, ":9477", settings.MetricsAddr)
}

func TestKeyBindingsConfig_Validate(t *testing.T) {
	valid := []string{"start", "pause", "help"}

	tests := []struct {
		name    string
		keys    KeyBindingsConfig
		wantErr string
	}{
		{name: "nil"},
		{name: "ok", keys: KeyBindingsConfig{"start": {"enter"}, "pause": {" "}}},
		{name: "unknown name", keys: KeyBindingsConfig{"archive": {"a"}}, wantErr: "unknown key binding"},
		{name: "empty value", keys: KeyBindingsConfig{"start": {""}}, wantErr: "empty value"},
		{name: "duplicate", keys: KeyBindingsConfig{"start": {"x"}, "pause": {"x"}}, wantErr: "assigned to both"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.keys.Validate(valid)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestPaths(t *testing.T) {
	t.Setenv("TEMPO_HOME", "/tmp/tempo-home")
	assert.Equal(t, "/tmp/tempo-home", GetTempoHome())
	assert.Equal(t, "/tmp/tempo-home/state.db", GetDBPath())
	assert.Equal(t, "/tmp/tempo-home/settings.json", GetSettingsPath())

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "x"), ExpandPath("~/x"))
	assert.Equal(t, "/abs", ExpandPath("/abs"))
}

func TestGetSettingsExample(t *testing.T) {
	example := GetSettingsExample()
	assert.Equal(t, false, example["debug"])
	assert.Equal(t, true, example["sound"])
	assert.Equal(t, 1000, example["max_log_files"])
	assert.Equal(t, "en-US", example["locale"])
	assert.Contains(t, example, "keys")
	assert.Len(t, example, 7)
}
