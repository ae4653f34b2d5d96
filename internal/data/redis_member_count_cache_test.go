package data

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edinfinite/platform-api/internal/testutil"
)

func TestRedisMemberCountCache(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	client := testutil.SetupTestRedis(t)
	defer client.Close()

	cache := NewRedisMemberCountCache(client)
	ctx := context.Background()

	t.Run("miss on unknown room", func(t *testing.T) {
		_, ok, err := cache.Get(ctx, "room-miss")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "room-1", 7, 5*time.Minute))

		count, ok, err := cache.Get(ctx, "room-1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 7, count)
	})

	t.Run("invalidate", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "room-2", 3, 5*time.Minute))
		require.NoError(t, cache.Invalidate(ctx, "room-2"))

		_, ok, err := cache.Get(ctx, "room-2")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty room id rejected", func(t *testing.T) {
		_, _, err := cache.Get(ctx, "")
		assert.Error(t, err)
		assert.Error(t, cache.Set(ctx, "", 1, time.Minute))
	})

	t.Run("unparseable entry treated as miss", func(t *testing.T) {
		require.NoError(t, client.Set(ctx, "room:member_count:bad", "not-a-number", time.Minute).Err())

		_, ok, err := cache.Get(ctx, "bad")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
