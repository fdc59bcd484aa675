package easyappointments_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voctra-ai/easy-appointments-client/pkg/easyappointments"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	t.Parallel()

	cache := easyappointments.NewMemoryCache(10)
	ctx := context.Background()

	entry := &easyappointments.CacheEntry{
		Data:      []byte(`[{"id": 1}]`),
		ExpiresAt: time.Now().Add(1 * time.Hour),
		ETag:      "abc123",
	}

	err := cache.Set(ctx, "key1", entry)
	require.NoError(t, err)

	retrieved, err := cache.Get(ctx, "key1")
	require.NoError(t, err)
	assert.Equal(t, entry.Data, retrieved.Data)
	assert.Equal(t, entry.ETag, retrieved.ETag)
}

func TestMemoryCache_GetNonExistent(t *testing.T) {
	t.Parallel()

	cache := easyappointments.NewMemoryCache(10)

	_, err := cache.Get(context.Background(), "nonexistent")
	require.ErrorIs(t, err, easyappointments.ErrCacheKeyNotFound)
}

func TestMemoryCache_GetExpired(t *testing.T) {
	t.Parallel()

	cache := easyappointments.NewMemoryCache(10)
	ctx := context.Background()

	entry := &easyappointments.CacheEntry{
		Data:      []byte("stale"),
		ExpiresAt: time.Now().Add(-1 * time.Hour),
	}

	err := cache.Set(ctx, "key1", entry)
	require.NoError(t, err)

	_, err = cache.Get(ctx, "key1")
	require.ErrorIs(t, err, easyappointments.ErrCacheEntryExpired)

	// The expired entry is removed on access.
	assert.Equal(t, 0, cache.Len())
}

func TestMemoryCache_Delete(t *testing.T) {
	t.Parallel()

	cache := easyappointments.NewMemoryCache(10)
	ctx := context.Background()

	entry := &easyappointments.CacheEntry{
		Data:      []byte("data"),
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}

	err := cache.Set(ctx, "key1", entry)
	require.NoError(t, err)
	assert.True(t, cache.Has(ctx, "key1"))

	err = cache.Delete(ctx, "key1")
	require.NoError(t, err)
	assert.False(t, cache.Has(ctx, "key1"))
}

func TestMemoryCache_Clear(t *testing.T) {
	t.Parallel()

	cache := easyappointments.NewMemoryCache(10)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		entry := &easyappointments.CacheEntry{
			Data:      []byte("data"),
			ExpiresAt: time.Now().Add(1 * time.Hour),
		}
		_ = cache.Set(ctx, fmt.Sprintf("key%d", i), entry)
	}

	assert.Equal(t, 3, cache.Len())

	err := cache.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, cache.Len())
}

func TestMemoryCache_EvictsWhenFull(t *testing.T) {
	t.Parallel()

	cache := easyappointments.NewMemoryCache(2)
	ctx := context.Background()

	// "soon" expires first, so it is the eviction victim.
	_ = cache.Set(ctx, "soon", &easyappointments.CacheEntry{
		Data:      []byte("a"),
		ExpiresAt: time.Now().Add(1 * time.Minute),
	})
	_ = cache.Set(ctx, "later", &easyappointments.CacheEntry{
		Data:      []byte("b"),
		ExpiresAt: time.Now().Add(1 * time.Hour),
	})
	_ = cache.Set(ctx, "newest", &easyappointments.CacheEntry{
		Data:      []byte("c"),
		ExpiresAt: time.Now().Add(1 * time.Hour),
	})

	assert.Equal(t, 2, cache.Len())
	assert.False(t, cache.Has(ctx, "soon"))
	assert.True(t, cache.Has(ctx, "later"))
	assert.True(t, cache.Has(ctx, "newest"))
}

func TestMemoryCache_UpdateDoesNotEvict(t *testing.T) {
	t.Parallel()

	cache := easyappointments.NewMemoryCache(1)
	ctx := context.Background()

	entry := &easyappointments.CacheEntry{
		Data:      []byte("v1"),
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}
	require.NoError(t, cache.Set(ctx, "key1", entry))

	updated := &easyappointments.CacheEntry{
		Data:      []byte("v2"),
		ExpiresAt: time.Now().Add(2 * time.Hour),
	}
	require.NoError(t, cache.Set(ctx, "key1", updated))

	retrieved, err := cache.Get(ctx, "key1")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), retrieved.Data)
	assert.Equal(t, 1, cache.Len())
}

func TestNoOpCache(t *testing.T) {
	t.Parallel()

	cache := easyappointments.NewNoOpCache()
	ctx := context.Background()

	entry := &easyappointments.CacheEntry{
		Data:      []byte("data"),
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}

	require.NoError(t, cache.Set(ctx, "key1", entry))
	assert.False(t, cache.Has(ctx, "key1"))

	_, err := cache.Get(ctx, "key1")
	require.ErrorIs(t, err, easyappointments.ErrCacheDisabled)

	require.NoError(t, cache.Delete(ctx, "key1"))
	require.NoError(t, cache.Clear(ctx))
}

func TestCacheEntry_Expired(t *testing.T) {
	t.Parallel()

	assert.False(t, (&easyappointments.CacheEntry{}).Expired())
	assert.False(t, (&easyappointments.CacheEntry{ExpiresAt: time.Now().Add(time.Hour)}).Expired())
	assert.True(t, (&easyappointments.CacheEntry{ExpiresAt: time.Now().Add(-time.Second)}).Expired())
}
