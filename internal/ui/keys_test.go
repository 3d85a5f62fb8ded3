package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/tempo/internal/config"
)

func TestNewKeyMap_CustomOverride(t *testing.T) {
	keys := NewKeyMap(config.KeyBindingsConfig{"start": {"enter", "s"}})

	assert.Equal(t, []string{"enter", "s"}, keys.Start.Keys())
	assert.Equal(t, "enter/s", keys.Start.Help().Key)
	assert.Equal(t, []string{"p"}, keys.Pause.Keys())
}

func TestKeyDefinitions(t *testing.T) {
	names := GetValidKeyNames()
	assert.Len(t, names, len(AllKeyDefinitions))
	assert.IsIncreasing(t, names)

	assert.True(t, IsValidKeyName("history"))
	assert.False(t, IsValidKeyName("archive"))
	assert.Nil(t, GetKeyDefinition("archive"))
}

func TestDefaultKeyBindings_NoConflicts(t *testing.T) {
	custom := config.KeyBindingsConfig{}
	for name, keys := range GetDefaultKeyBindings() {
		custom[name] = keys
	}
	assert.NoError(t, custom.Validate(GetValidKeyNames()))
}
