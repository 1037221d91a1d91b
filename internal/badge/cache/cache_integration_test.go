//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"merit/pkg/testutil/containers"
)

func TestScoreCache(t *testing.T) {
	ctx := context.Background()
	rc := containers.NewRedisContainer(t)
	scoreCache := NewScoreCache(rc.Client, time.Minute)

	t.Run("miss before set", func(t *testing.T) {
		_, hit, err := scoreCache.Get(ctx, 1)
		require.NoError(t, err)
		require.False(t, hit)
	})

	t.Run("set then hit", func(t *testing.T) {
		require.NoError(t, scoreCache.Set(ctx, 1, 72))

		score, hit, err := scoreCache.Get(ctx, 1)
		require.NoError(t, err)
		require.True(t, hit)
		require.Equal(t, uint(72), score)
	})

	t.Run("invalidate drops the entry", func(t *testing.T) {
		require.NoError(t, scoreCache.Set(ctx, 2, 50))
		require.NoError(t, scoreCache.Invalidate(ctx, 2))

		_, hit, err := scoreCache.Get(ctx, 2)
		require.NoError(t, err)
		require.False(t, hit)
	})

	t.Run("corrupt entry reads as miss", func(t *testing.T) {
		require.NoError(t, rc.Client.Set(ctx, scoreKeyPrefix+"3", "not-a-number", time.Minute).Err())

		_, hit, err := scoreCache.Get(ctx, 3)
		require.NoError(t, err)
		require.False(t, hit)
	})
}

func TestScoreCacheTTLExpiry(t *testing.T) {
	ctx := context.Background()
	rc := containers.NewRedisContainer(t)
	scoreCache := NewScoreCache(rc.Client, 100*time.Millisecond)

	require.NoError(t, scoreCache.Set(ctx, 1, 60))

	_, hit, err := scoreCache.Get(ctx, 1)
	require.NoError(t, err)
	require.True(t, hit)

	time.Sleep(300 * time.Millisecond)

	_, hit, err = scoreCache.Get(ctx, 1)
	require.NoError(t, err)
	require.False(t, hit)
}
