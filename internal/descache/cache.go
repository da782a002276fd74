// Package descache is a thread-safe in-memory TTL cache for refreshed
// article descriptions. Entries expire lazily on access.
package descache

import (
	"sync"
	"time"
)

// DefaultTTL is how long a refreshed description stays valid.
const DefaultTTL = 30 * time.Minute

type entry struct {
	description string
	expiresAt   time.Time
}

// Cache holds refreshed descriptions keyed by article title.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
}

// New creates a cache with the given TTL; zero or negative falls back to
// DefaultTTL.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{entries: make(map[string]entry), ttl: ttl}
}

// Get returns a cached description and whether it is present and unexpired.
func (c *Cache) Get(title string) (string, bool) {
	c.mu.RLock()
	e, ok := c.entries[title]
	c.mu.RUnlock()

	if !ok {
		return "", false
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		if current, still := c.entries[title]; still && time.Now().After(current.expiresAt) {
			delete(c.entries, title)
		}
		c.mu.Unlock()
		return "", false
	}
	return e.description, true
}

// Set stores a description with the cache's TTL.
func (c *Cache) Set(title, description string) {
	c.mu.Lock()
	c.entries[title] = entry{description: description, expiresAt: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}

// Clear drops every entry and returns how many were removed.
func (c *Cache) Clear() int {
	c.mu.Lock()
	removed := len(c.entries)
	c.entries = make(map[string]entry)
	c.mu.Unlock()
	return removed
}

// Len reports the number of entries, including any not yet lazily expired.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
