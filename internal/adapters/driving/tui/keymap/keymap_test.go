package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	k := DefaultKeyMap()

	require.NotNil(t, k)
	assert.Contains(t, k.Quit.Keys(), "ctrl+c")
	assert.Contains(t, k.Back.Keys(), "esc")
	assert.Contains(t, k.Select.Keys(), "enter")
	assert.Contains(t, k.Done.Keys(), "ctrl+d")
}

func TestMatches(t *testing.T) {
	k := DefaultKeyMap()

	assert.True(t, Matches("ctrl+c", k.Quit))
	assert.True(t, Matches("enter", k.Select))
	assert.False(t, Matches("q", k.Quit))
}

func TestHelpGroups(t *testing.T) {
	k := DefaultKeyMap()

	assert.NotEmpty(t, k.ShortHelp())
	assert.NotEmpty(t, k.ListHelp())
	assert.NotEmpty(t, k.MultilineHelp())
}
