package cmd

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"text/tabwriter"

	json "github.com/goccy/go-json"

	"github.com/renato0307/tempo/internal/config"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Keys SettingsKeysCmd `cmd:"keys" help:"Manage keyboard shortcuts"`
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range slices.Sorted(maps.Keys(example)) {
		var valueStr string
		switch v := example[key].(type) {
		case string:
			valueStr = v
		case bool:
			valueStr = fmt.Sprintf("%t", v)
		case int:
			valueStr = fmt.Sprintf("%d", v)
		default:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		}
		fmt.Fprintf(w, "%s\t%s\n", key, valueStr)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Create or edit this file to configure tempo.")
	fmt.Println("All settings are optional and have sensible defaults.")
	return nil
}
