package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryCache is an in-process cache bounded by entry count. When full,
// the entry that expires soonest is evicted.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	max     int
	now     func() time.Time
}

// NewMemoryCache returns a cache holding at most max entries (0 means unbounded).
func NewMemoryCache(max int) *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryEntry), max: max, now: time.Now}
}

func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !e.expiresAt.IsZero() && c.now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil, false, nil
	}
	return append([]byte(nil), e.data...), true, nil
}

func (c *MemoryCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := memoryEntry{data: append([]byte(nil), data...)}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}
	if _, exists := c.entries[key]; !exists && c.max > 0 && len(c.entries) >= c.max {
		c.evict()
	}
	c.entries[key] = e
	return nil
}

func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *MemoryCache) Close() error { return nil }

// evict drops one entry; entries without expiry go last.
func (c *MemoryCache) evict() {
	var victim string
	var soonest time.Time
	found := false
	for k, e := range c.entries {
		switch {
		case !found:
			victim, soonest, found = k, e.expiresAt, true
		case soonest.IsZero() && !e.expiresAt.IsZero():
			victim, soonest = k, e.expiresAt
		case !e.expiresAt.IsZero() && e.expiresAt.Before(soonest):
			victim, soonest = k, e.expiresAt
		case e.expiresAt.Equal(soonest) && k < victim:
			victim = k
		}
	}
	if found {
		delete(c.entries, victim)
	}
}

var _ Cache = (*MemoryCache)(nil)
