package cache

import (
	"context"
	"sync"
	"time"

	"github.com/loki47z/msih-hackathon/internal/domain"
)

// cacheItem represents a single item in the cache with its creation time
type cacheItem struct {
	Value     interface{}
	CreatedAt time.Time
	TTL       time.Duration
}

// MemoryCache is a thread-safe in-memory result cache with TTL semantics and
// hit/miss accounting. Stale entries are not proactively purged: a lookup
// past the TTL counts as a miss and the entry is overwritten by the next Set.
// There is no size bound or LRU eviction; known limitation at this scale.
type MemoryCache struct {
	data   map[string]cacheItem
	hits   int64
	misses int64
	mutex  sync.RWMutex
}

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		data: make(map[string]cacheItem),
	}
}

// Get retrieves a value from the cache. A hit requires the entry to exist
// and be younger than its TTL; anything else counts as a miss.
func (c *MemoryCache) Get(ctx context.Context, key string) (interface{}, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	item, exists := c.data[key]
	if !exists || time.Since(item.CreatedAt) >= item.TTL {
		c.misses++
		return nil, domain.ErrCacheMiss
	}

	c.hits++
	return item.Value, nil
}

// Set stores a value in the cache, overwriting any stale entry for the key
func (c *MemoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = cacheItem{
		Value:     value,
		CreatedAt: time.Now(),
		TTL:       ttl,
	}

	return nil
}

// Stats returns the current hit/miss counters
func (c *MemoryCache) Stats() domain.CacheStats {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return domain.CacheStats{
		Hits:   c.hits,
		Misses: c.misses,
	}
}

// Clear removes all items and resets the counters to zero
func (c *MemoryCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data = make(map[string]cacheItem)
	c.hits = 0
	c.misses = 0
}

// Size returns the current number of items in the cache (for debugging)
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}
