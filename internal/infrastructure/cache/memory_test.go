package cache

import (
	"context"
	"testing"
	"time"

	"github.com/loki47z/msih-hackathon/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_GetSet(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	err := c.Set(ctx, "key", "value", time.Minute)
	require.NoError(t, err)

	value, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "value", value)
}

func TestMemoryCache_MissOnUnknownKey(t *testing.T) {
	c := NewMemoryCache()

	_, err := c.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestMemoryCache_ExpiredEntryMisses(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", "value", time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, err := c.Get(ctx, "key")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	// Stale entry is not purged, only superseded by the next Set
	assert.Equal(t, 1, c.Size())

	require.NoError(t, c.Set(ctx, "key", "fresh", time.Minute))
	value, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "fresh", value)
}

func TestMemoryCache_Stats(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	_, _ = c.Get(ctx, "a") // miss
	require.NoError(t, c.Set(ctx, "a", 1, time.Minute))
	_, _ = c.Get(ctx, "a") // hit
	_, _ = c.Get(ctx, "b") // miss

	stats := c.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(2), stats.Misses)
}

func TestMemoryCache_SameResultWithinTTL(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	stored := &domain.SearchResult{Suggestions: []string{"mango"}}
	require.NoError(t, c.Set(ctx, "q", stored, time.Minute))

	first, err := c.Get(ctx, "q")
	require.NoError(t, err)
	second, err := c.Get(ctx, "q")
	require.NoError(t, err)

	assert.Same(t, stored, first)
	assert.Same(t, first, second)
	assert.Equal(t, int64(2), c.Stats().Hits)
	assert.Equal(t, int64(0), c.Stats().Misses)
}

func TestMemoryCache_ClearResetsEverything(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", 1, time.Minute))
	_, _ = c.Get(ctx, "a")
	_, _ = c.Get(ctx, "b")

	c.Clear()

	stats := c.Stats()
	assert.Equal(t, domain.CacheStats{Hits: 0, Misses: 0}, stats)
	assert.Equal(t, 0, c.Size())

	_, err := c.Get(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}
