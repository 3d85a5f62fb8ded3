package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/tempo/internal/config"
)

// KeyMap contains all keyboard shortcuts of the timer screen
type KeyMap struct {
	ClearData key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	History   key.Binding
	Pause     key.Binding
	Quit      key.Binding
	Reset     key.Binding
	Start     key.Binding
}

// NewKeyMap creates a KeyMap; entries in customKeys override the defaults
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		ClearData: buildBinding("clear_data", defaults, customKeys),
		ForceQuit: buildBinding("force_quit", defaults, customKeys),
		Help:      buildBinding("help", defaults, customKeys),
		History:   buildBinding("history", defaults, customKeys),
		Pause:     buildBinding("pause", defaults, customKeys),
		Quit:      buildBinding("quit", defaults, customKeys),
		Reset:     buildBinding("reset", defaults, customKeys),
		Start:     buildBinding("start", defaults, customKeys),
	}
}

// buildBinding creates a key.Binding from the key definition, using custom keys if provided
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), def.Help),
	)
}

// ShortHelp implements help.KeyMap for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.Reset, k.History, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap, one column per key group
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Pause, k.Reset},
		{k.History, k.ClearData},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
