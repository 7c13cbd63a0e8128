package redis

import (
	"Microblog/internal/api/config"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func TestInitRedisDisabled(t *testing.T) {
	rdb, err := InitRedis(context.Background(), config.RedisConfig{})
	require.NoError(t, err)
	require.Nil(t, rdb)

	cache := NewCache(rdb)
	require.False(t, cache.Enabled())
	value, err := cache.GetValue(context.Background(), "k")
	require.NoError(t, err)
	require.Empty(t, value)
	require.NoError(t, cache.SetWithExpiration(context.Background(), "k", "v", time.Minute))
	require.NoError(t, cache.DeleteKey(context.Background(), "k"))
}

func TestCacheRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	rdb, err := InitRedis(ctx, config.RedisConfig{Addr: mr.Addr(), PoolSize: 2})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	cache := NewCache(rdb)
	require.True(t, cache.Enabled())

	value, err := cache.GetValue(ctx, "user:apikey:test")
	require.NoError(t, err)
	require.Empty(t, value)

	require.NoError(t, cache.SetWithExpiration(ctx, "user:apikey:test", "1", time.Hour))
	value, err = cache.GetValue(ctx, "user:apikey:test")
	require.NoError(t, err)
	require.Equal(t, "1", value)
	require.Equal(t, time.Hour, mr.TTL("user:apikey:test"))

	require.NoError(t, cache.DeleteKey(ctx, "user:apikey:test"))
	require.False(t, mr.Exists("user:apikey:test"))
}

func TestInitRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := InitRedis(context.Background(), config.RedisConfig{Addr: addr})
	require.Error(t, err)
}
