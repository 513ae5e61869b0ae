// Package cache memoizes read-only API responses between store changes.
// Entries expire after a TTL and the whole cache is flushed whenever the
// quote store changes.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache wraps go-cache with a small, typed surface.
type Cache struct {
	store *gocache.Cache
}

// New creates a cache. Expired entries are purged every cleanupInterval.
func New(defaultTTL, cleanupInterval time.Duration) *Cache {
	return &Cache{store: gocache.New(defaultTTL, cleanupInterval)}
}

// Get returns the value for key.
func (c *Cache) Get(key string) (any, bool) {
	return c.store.Get(key)
}

// Set stores value under key with the default TTL.
func (c *Cache) Set(key string, value any) {
	c.store.Set(key, value, gocache.DefaultExpiration)
}

// Remember returns the cached value for key, computing and storing it on a miss.
func (c *Cache) Remember(key string, compute func() any) any {
	if v, ok := c.store.Get(key); ok {
		return v
	}
	v := compute()
	c.store.Set(key, v, gocache.DefaultExpiration)
	return v
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.store.Flush()
}

// ItemCount returns the number of cached entries, including expired ones
// that have not been purged yet.
func (c *Cache) ItemCount() int {
	return c.store.ItemCount()
}
