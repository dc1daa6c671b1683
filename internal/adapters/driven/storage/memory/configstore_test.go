package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
}

func TestConfigStore_Set_Success(t *testing.T) {
	store := NewConfigStore()

	err := store.Set("key1", "value1")
	require.NoError(t, err)

	val, ok := store.Get("key1")
	assert.True(t, ok)
	assert.Equal(t, "value1", val)
}

func TestConfigStore_Set_Update(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("key1", "original"))
	require.NoError(t, store.Set("key1", "updated"))

	val, ok := store.Get("key1")
	assert.True(t, ok)
	assert.Equal(t, "updated", val)
}

func TestConfigStore_Get_Missing(t *testing.T) {
	store := NewConfigStore()

	val, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_GetString(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("str", "hello"))
	require.NoError(t, store.Set("num", 42))

	assert.Equal(t, "hello", store.GetString("str"))
	assert.Equal(t, "", store.GetString("num"))
	assert.Equal(t, "", store.GetString("missing"))
}

func TestConfigStore_GetInt(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("int", 42))
	require.NoError(t, store.Set("int64", int64(43)))
	require.NoError(t, store.Set("float", 44.0))
	require.NoError(t, store.Set("str", "nope"))

	assert.Equal(t, 42, store.GetInt("int"))
	assert.Equal(t, 43, store.GetInt("int64"))
	assert.Equal(t, 44, store.GetInt("float"))
	assert.Equal(t, 0, store.GetInt("str"))
	assert.Equal(t, 0, store.GetInt("missing"))
}

func TestConfigStore_GetBool(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("yes", true))
	require.NoError(t, store.Set("str", "true"))

	assert.True(t, store.GetBool("yes"))
	assert.False(t, store.GetBool("str"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_GetStringSlice(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("slice", []string{"a", "b"}))
	require.NoError(t, store.Set("anySlice", []any{"c", 1, "d"}))
	require.NoError(t, store.Set("str", "nope"))

	assert.Equal(t, []string{"a", "b"}, store.GetStringSlice("slice"))
	assert.Equal(t, []string{"c", "d"}, store.GetStringSlice("anySlice"))
	assert.Nil(t, store.GetStringSlice("str"))
	assert.Nil(t, store.GetStringSlice("missing"))
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.Set("key", "value")
		}()
		go func() {
			defer wg.Done()
			_, _ = store.Get("key")
		}()
	}
	wg.Wait()

	assert.Equal(t, "value", store.GetString("key"))
}
