package ui

import (
	"sort"
	"sync"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults []string
	Group    string
	Help     string
	Name     string
}

// AllKeyDefinitions contains all configurable key bindings
var AllKeyDefinitions = []KeyDefinition{
	// Timer keys
	{Name: "start", Group: "Timer", Defaults: []string{"s"}, Help: "start or resume"},
	{Name: "pause", Group: "Timer", Defaults: []string{"p"}, Help: "pause"},
	{Name: "reset", Group: "Timer", Defaults: []string{"r"}, Help: "reset to focus"},

	// Statistics keys
	{Name: "history", Group: "Statistics", Defaults: []string{"h"}, Help: "toggle session history"},
	{Name: "clear_data", Group: "Statistics", Defaults: []string{"X"}, Help: "clear all data"},

	// Application keys
	{Name: "force_quit", Group: "Application", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Group: "Application", Defaults: []string{"?"}, Help: "show keyboard shortcuts"},
	{Name: "quit", Group: "Application", Defaults: []string{"q"}, Help: "exit application"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
// The result is cached after the first call.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// IsValidKeyName reports whether name is a known key binding
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}
