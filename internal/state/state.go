package state

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value   V
	expires time.Time
}

// Cache is a string-keyed in-memory store whose entries expire after a fixed TTL.
type Cache[V any] struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry[V]
	now     func() time.Time
}

// NewCache creates a cache holding entries for ttl
func NewCache[V any](ttl time.Duration) *Cache[V] {
	return &Cache[V]{
		ttl:     ttl,
		entries: make(map[string]entry[V]),
		now:     time.Now,
	}
}

// WithClock replaces the time source; tests use it to expire entries.
func (c *Cache[V]) WithClock(now func() time.Time) *Cache[V] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
	return c
}

// Get returns the value stored for key if it has not expired.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || !c.now().Before(e.expires) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key, replacing any previous entry.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{value: value, expires: c.now().Add(c.ttl)}
}

// Purge drops expired entries and returns how many remain.
func (c *Cache[V]) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for k, e := range c.entries {
		if !now.Before(e.expires) {
			delete(c.entries, k)
		}
	}
	return len(c.entries)
}

// Len counts stored entries, expired or not.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
