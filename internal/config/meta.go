package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		// Extract the JSON field name (before comma)
		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Name() == "KeyBindingsConfig" {
		return map[string]any{
			"start": "s",
			"help":  []string{"?", "f1"},
		}
	}

	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			// Return boolean value directly (not pointer)
			return fieldName != "debug"
		case reflect.Int:
			if fieldName == "max_log_files" {
				return 1000
			}
			return 10
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "locale":
			return "en-US"
		case "metrics_addr":
			return "127.0.0.1:9477"
		default:
			return "example"
		}
	}

	return nil
}
