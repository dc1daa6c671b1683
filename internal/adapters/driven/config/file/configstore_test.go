package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.DirExists(t, dir)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestConfigStore_SetPersistsImmediately(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("commit.subject_max_length", 50))

	assert.FileExists(t, store.Path())

	// A fresh store reads the value back from disk.
	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, 50, reloaded.GetInt("commit.subject_max_length"))
}

func TestConfigStore_GetMissing(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, "", store.GetString("missing"))
	assert.Equal(t, 0, store.GetInt("missing"))
	assert.False(t, store.GetBool("missing"))
	assert.Nil(t, store.GetStringSlice("missing"))
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("s", "text"))
	require.NoError(t, store.Set("n", 7))
	require.NoError(t, store.Set("b", true))
	require.NoError(t, store.Set("list", []string{"a", "b"}))

	assert.Equal(t, "text", store.GetString("s"))
	assert.Equal(t, 7, store.GetInt("n"))
	assert.True(t, store.GetBool("b"))
	assert.Equal(t, []string{"a", "b"}, store.GetStringSlice("list"))
}

func TestConfigStore_WrongTypeYieldsZeroValue(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("n", "not a number"))

	assert.Equal(t, 0, store.GetInt("n"))
	assert.False(t, store.GetBool("n"))
	assert.Nil(t, store.GetStringSlice("n"))
}

func TestConfigStore_LoadFlattensNestedTables(t *testing.T) {
	dir := t.TempDir()
	content := "[commit]\nsubject_max_length = 60\nskip_questions = [\"body\", \"issues\"]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, 60, store.GetInt("commit.subject_max_length"))
	assert.Equal(t, []string{"body", "issues"}, store.GetStringSlice("commit.skip_questions"))
}

func TestConfigStore_LoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not toml {{{"), 0600))

	_, err := NewConfigStore(dir)
	assert.Error(t, err)
}

func TestFlattenMap(t *testing.T) {
	flat := flattenMap(map[string]any{
		"top": "value",
		"commit": map[string]any{
			"subject_max_length": int64(75),
			"formats": map[string]any{
				"plain": "x",
			},
		},
	}, "")

	assert.Equal(t, map[string]any{
		"top":                       "value",
		"commit.subject_max_length": int64(75),
		"commit.formats.plain":      "x",
	}, flat)
}
