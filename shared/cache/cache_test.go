package cache_test

import (
	"context"
	"neodrive/infras/otel/mocks"
	"neodrive/shared/cache"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unreachable(t *testing.T) cache.RedisCache {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 100 * time.Millisecond,
	})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, mocks.NewOtel())
}

func TestRedisCache_Unreachable(t *testing.T) {
	ctx := context.Background()
	rc := unreachable(t)

	t.Run("increment reports the failure with a zero count", func(t *testing.T) {
		count, err := rc.Increment(ctx, "rate:client", 60)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to increment cache counter")
		assert.Zero(t, count)
	})

	t.Run("get is not a cache miss", func(t *testing.T) {
		var value map[string]any
		err := rc.Get(ctx, "car:get:abc", &value)
		require.Error(t, err)
		assert.NotErrorIs(t, err, cache.Nil)
	})
}
