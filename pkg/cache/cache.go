package cache

import (
	"context"
	"sync"
	"time"
)

// ExistenceCache caches boolean answers (e.g. "does business N have complete
// cached place data") with a TTL. Implementations must treat backend failures
// as cache misses; a cache outage must never fail a request.
type ExistenceCache interface {
	Get(ctx context.Context, key string) (value bool, found bool)
	Set(ctx context.Context, key string, value bool, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

type memoryEntry struct {
	value     bool
	expiresAt time.Time
}

// MemoryCache is an in-process ExistenceCache with per-entry TTL. Expired
// entries are dropped lazily on read.
type MemoryCache struct {
	entries map[string]memoryEntry
	mu      sync.RWMutex
}

// NewMemoryCache creates a new in-memory existence cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
	}
}

// Get returns the cached value for a key if present and not expired.
func (c *MemoryCache) Get(_ context.Context, key string) (bool, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return false, false
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return false, false
	}
	return entry.value, true
}

// Set stores a value for a key with the given TTL.
func (c *MemoryCache) Set(_ context.Context, key string, value bool, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memoryEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

// Delete removes a key.
func (c *MemoryCache) Delete(_ context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}
