package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeStore_TouchAndRecent(t *testing.T) {
	store := NewScopeStore()
	ctx := context.Background()

	require.NoError(t, store.Touch(ctx, "auth"))
	require.NoError(t, store.Touch(ctx, "api"))
	require.NoError(t, store.Touch(ctx, "ui"))

	recent, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"ui", "api", "auth"}, recent)
}

func TestScopeStore_TouchMovesToFront(t *testing.T) {
	store := NewScopeStore()
	ctx := context.Background()

	require.NoError(t, store.Touch(ctx, "auth"))
	require.NoError(t, store.Touch(ctx, "api"))
	require.NoError(t, store.Touch(ctx, "auth"))

	recent, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"auth", "api"}, recent)
}

func TestScopeStore_RecentHonorsLimit(t *testing.T) {
	store := NewScopeStore()
	ctx := context.Background()

	for _, s := range []string{"a", "b", "c", "d"} {
		require.NoError(t, store.Touch(ctx, s))
	}

	recent, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "c"}, recent)
}

func TestScopeStore_RecentEmpty(t *testing.T) {
	store := NewScopeStore()

	recent, err := store.Recent(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, recent)
}
