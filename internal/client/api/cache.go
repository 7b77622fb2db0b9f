package api

import (
	"strings"
	"sync"
	"time"
)

// responseCache holds the last successful body per request key. Entries never
// expire eagerly; staleness is evaluated lazily at lookup time, so an entry
// older than the freshness window simply reads as absent until the next
// successful fetch overwrites it.
type responseCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	now     func() time.Time // test seam
}

type cacheEntry struct {
	body []byte
	at   time.Time
}

func newResponseCache() *responseCache {
	return &responseCache{
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (c *responseCache) get(key string, ttl time.Duration) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.at) >= ttl {
		return nil, false
	}
	return e.body, true
}

func (c *responseCache) set(key string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{body: body, at: c.now()}
}

func (c *responseCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

func (c *responseCache) clearPattern(pattern string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.Contains(key, pattern) {
			delete(c.entries, key)
		}
	}
}
