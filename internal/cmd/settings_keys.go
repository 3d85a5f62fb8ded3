package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	json "github.com/goccy/go-json"

	"github.com/renato0307/tempo/internal/config"
	"github.com/renato0307/tempo/internal/logging"
	"github.com/renato0307/tempo/internal/ui"
)

// SettingsKeysCmd manages keyboard shortcuts
type SettingsKeysCmd struct {
	List SettingsKeysListCmd `cmd:"list" help:"List key bindings of the timer screen" default:"1"`
	Set  SettingsKeysSetCmd  `cmd:"set" help:"Remap a key binding"`
}

// SettingsKeysListCmd lists all key bindings
type SettingsKeysListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// SettingsKeysSetCmd sets a key binding
type SettingsKeysSetCmd struct {
	Key   string `arg:"" help:"Key name (e.g., start, pause, history)"`
	Value string `arg:"" help:"Key binding (e.g., a, ctrl+s, or comma-separated for multiple: s,enter)"`
}

// keyBindingJSON is one entry of the json listing
type keyBindingJSON struct {
	Custom  []string `json:"custom,omitempty"`
	Default []string `json:"default"`
	Group   string   `json:"group"`
	Help    string   `json:"help"`
}

// Run executes the list command
func (s *SettingsKeysListCmd) Run(cli *CLI) error {
	var customKeys config.KeyBindingsConfig
	if cli.settings != nil {
		customKeys = cli.settings.Keys
	}

	if s.Format == "json" {
		return writeKeyBindingsJSON(os.Stdout, customKeys)
	}
	writeKeyBindingsTable(os.Stdout, config.GetSettingsPath(), customKeys)
	return nil
}

// writeKeyBindingsJSON writes every binding keyed by name
func writeKeyBindingsJSON(w io.Writer, customKeys config.KeyBindingsConfig) error {
	result := make(map[string]keyBindingJSON, len(ui.AllKeyDefinitions))
	for _, def := range ui.AllKeyDefinitions {
		entry := keyBindingJSON{Default: def.Defaults, Group: def.Group, Help: def.Help}
		if custom := customKeys[def.Name]; len(custom) > 0 {
			entry.Custom = custom
		}
		result[def.Name] = entry
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

// writeKeyBindingsTable writes one section per key group, in the order the
// help screen shows them, marking remapped keys
func writeKeyBindingsTable(w io.Writer, settingsFile string, customKeys config.KeyBindingsConfig) {
	fmt.Fprintf(w, "Key Bindings (settings file: %s)\n", settingsFile)

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	group := ""
	for _, def := range ui.AllKeyDefinitions {
		if def.Group != group {
			group = def.Group
			fmt.Fprintf(tw, "\n%s\n", group)
		}

		keys := strings.Join(def.Defaults, ", ")
		if custom := customKeys[def.Name]; len(custom) > 0 {
			keys = strings.Join(custom, ", ") + " (default " + keys + ")"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", def.Name, keys, def.Help)
	}
	tw.Flush()

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Use 'tempo settings keys set <name> <value>' to remap.")
}

// Run executes the set command
func (s *SettingsKeysSetCmd) Run(cli *CLI) error {
	values, err := applyKeyBinding(s.Key, s.Value)
	if err != nil {
		return err
	}
	fmt.Printf("Set '%s' to: %s\n", s.Key, strings.Join(values, ", "))
	return nil
}

// applyKeyBinding validates and stores a remapped key in settings.json
func applyKeyBinding(name, value string) ([]string, error) {
	if !ui.IsValidKeyName(name) {
		return nil, fmt.Errorf("unknown key '%s'. Valid keys: %s",
			name, strings.Join(ui.GetValidKeyNames(), ", "))
	}

	values := parseKeyValues(value)
	if len(values) == 0 {
		return nil, fmt.Errorf("value cannot be empty")
	}

	logging.Logger.Debug("Setting key binding", "key", name, "values", values)

	settings, err := config.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.Keys == nil {
		settings.Keys = make(config.KeyBindingsConfig)
	}
	settings.Keys[name] = values

	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return nil, fmt.Errorf("conflict: %w", err)
	}

	if err := config.SaveSettings(settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return values, nil
}

// parseKeyValues parses comma-separated key values
func parseKeyValues(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
