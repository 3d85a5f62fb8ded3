package config

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
)

// KeyBindingValue supports "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	// Fall back to single string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig holds custom key binding overrides as a map.
// Keys are binding names (e.g., "start", "help"), values are the key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for configuration errors in key bindings.
// The validNames parameter should come from ui.GetValidKeyNames().
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	// Track all keys to detect duplicates
	keyToAction := make(map[string]string)

	for name, keys := range k {
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}

		if len(keys) == 0 {
			continue // Not configured, will use default
		}

		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// Settings represents the structure of ~/.tempo/settings.json.
// Pointer fields distinguish "unset" from the zero value.
type Settings struct {
	Debug         *bool             `json:"debug,omitempty"`
	Keys          KeyBindingsConfig `json:"keys,omitempty"`
	Locale        string            `json:"locale,omitempty"`
	MaxLogFiles   *int              `json:"max_log_files,omitempty"`
	MetricsAddr   string            `json:"metrics_addr,omitempty"`
	Notifications *bool             `json:"notifications,omitempty"`
	Sound         *bool             `json:"sound,omitempty"`
}

// SoundEnabled reports whether audio cues are on; default true
func (s *Settings) SoundEnabled() bool {
	return s == nil || s.Sound == nil || *s.Sound
}

// NotificationsEnabled reports whether desktop notifications are on; default true
func (s *Settings) NotificationsEnabled() bool {
	return s == nil || s.Notifications == nil || *s.Notifications
}

// LoadSettings loads settings from $TEMPO_HOME/settings.json (or ~/.tempo/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $TEMPO_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
