package common

import (
	"sync"
	"time"
)

// cachedItem represents a generic item in the cache.
type cachedItem[V any] struct {
	data V
	time time.Time
}

// Cache provides a thread-safe, generic caching mechanism with a TTL.
type Cache[K comparable, V any] struct {
	store sync.Map
	ttl   time.Duration
	now   func() time.Time
}

// NewCache creates a new generic cache with the specified TTL.
func NewCache[K comparable, V any](ttl time.Duration) *Cache[K, V] {
	return &Cache[K, V]{
		ttl: ttl,
		now: time.Now,
	}
}

// Set adds a new entry to the cache.
func (c *Cache[K, V]) Set(key K, data V) {
	c.store.Store(key, cachedItem[V]{
		data: data,
		time: c.now(),
	})
}

// Get retrieves an entry from the cache. Expired entries are evicted.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	if item, ok := c.store.Load(key); ok {
		cached := item.(cachedItem[V])
		if c.now().Sub(cached.time) < c.ttl {
			return cached.data, true
		}
		c.store.Delete(key)
	}
	var zero V
	return zero, false
}
