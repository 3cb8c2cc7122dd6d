package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewCache(rdb), mr
}

func TestCache_SetGetDelete(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Stars int    `json:"stars"`
	}

	var got payload
	found, err := cache.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, cache.Set(ctx, "k", payload{Name: "Grand Inn", Stars: 4}, time.Minute))
	found, err = cache.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload{Name: "Grand Inn", Stars: 4}, got)

	mr.FastForward(2 * time.Minute)
	found, err = cache.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, cache.Set(ctx, "k", payload{}, time.Minute))
	require.NoError(t, cache.Delete(ctx, "k"))
	assert.False(t, mr.Exists("k"))
}

func TestCache_Counter(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	n, err := cache.Counter(ctx, "gen")
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = cache.Incr(ctx, "gen")
	require.NoError(t, err)
	n, err = cache.Counter(ctx, "gen")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCache_Disabled(t *testing.T) {
	var cache *Cache
	ctx := context.Background()

	assert.False(t, cache.Enabled())
	assert.NoError(t, cache.Set(ctx, "k", 1, time.Minute))
	var v int
	found, err := cache.Get(ctx, "k", &v)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, cache.Delete(ctx, "k"))

	assert.False(t, NewCache(nil).Enabled())
}
