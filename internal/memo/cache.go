// Package memo provides the process-lifetime closure cache. Entries are
// keyed by structural node identity and never evicted: the hierarchy is
// immutable and finite, so a computed result stays valid until exit.
package memo

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"catena/internal/logging"
)

// Cache memoizes expensive computations keyed by string. Concurrent
// first-time requests for the same key coalesce into a single in-flight
// computation; every waiter observes the same result. Failed computations
// are never stored, so a later call can legitimately recompute.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
	group   singleflight.Group
}

// New returns an empty cache.
func New[V any]() *Cache[V] {
	return &Cache[V]{entries: make(map[string]V)}
}

// GetOrCompute returns the cached value for key, running fn at most once per
// key to produce it.
func (c *Cache[V]) GetOrCompute(key string, fn func() (V, error)) (V, error) {
	c.mu.RLock()
	v, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		logging.CacheDebug("hit %s", key)
		return v, nil
	}

	out, err, _ := c.group.Do(key, func() (interface{}, error) {
		// A racing caller may have stored between the read above and
		// entering the flight.
		c.mu.RLock()
		cached, ok := c.entries[key]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}

		computed, err := fn()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = computed
		c.mu.Unlock()
		logging.CacheDebug("stored %s", key)
		return computed, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return out.(V), nil
}

// Peek returns the cached value for key without computing anything.
func (c *Cache[V]) Peek(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

// Len returns the number of cached entries.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Purge drops every entry. Only tests and bootstrap code that corrects a
// declaration have a reason to call this.
func (c *Cache[V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]V)
}
