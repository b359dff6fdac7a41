package feed

import (
	"sync"
	"time"

	"agenda/internal/model"
)

// Cache is a single-slot expiring cache for the normalized catalog. The feed
// changes slowly and every chat turn re-reads it, so one memoized value with a
// staleness bound keeps the upstream API load flat. It is injected into the
// Client rather than held as package state, which keeps the filtering engine
// testable against a cold cache.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	events  []model.Event
	expires time.Time
	valid   bool
}

// NewCache creates a cache with the given time-to-live.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl, now: time.Now}
}

// Get returns the cached catalog and whether it is still fresh.
func (c *Cache) Get() ([]model.Event, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid || c.now().After(c.expires) {
		return nil, false
	}
	return c.events, true
}

// Put stores the catalog and stamps its expiry.
func (c *Cache) Put(events []model.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = events
	c.expires = c.now().Add(c.ttl)
	c.valid = true
}

// Invalidate drops the cached value.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
	c.events = nil
}
