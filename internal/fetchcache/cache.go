// Package fetchcache memoizes per-(source, query) fetch results for a fixed
// TTL so repeated searches do not hammer the upstream providers.
package fetchcache

import (
	"sync"
	"time"

	"github.com/jobradar/jobradar/internal/model"
)

// DefaultTTL is how long a fetch result stays valid unless configured otherwise.
const DefaultTTL = 30 * time.Minute

// Cache stores fetch results keyed by (source, query). Entries are purely
// time-evicted; there is no size bound and no LRU. Implementations must be
// safe for concurrent use. Identical in-flight fetches are not coalesced.
type Cache interface {
	Get(source, query string) ([]model.Job, bool)
	Set(source, query string, jobs []model.Job)
	Clear()
}

type memoryEntry struct {
	jobs      []model.Job
	expiresAt time.Time
}

// MemoryCache is the default in-process Cache.
type MemoryCache struct {
	mu    sync.Mutex
	items map[string]memoryEntry
	ttl   time.Duration
	now   func() time.Time
}

// NewMemoryCache creates an in-memory cache with the given TTL.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryCache{
		items: make(map[string]memoryEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Get returns the cached jobs for (source, query) if present and unexpired.
// Expired entries are removed on access.
func (c *MemoryCache) Get(source, query string) ([]model.Job, bool) {
	key := cacheKey(source, query)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[key]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		delete(c.items, key)
		return nil, false
	}
	return entry.jobs, true
}

// Set stores jobs for (source, query), replacing any previous entry.
func (c *MemoryCache) Set(source, query string, jobs []model.Job) {
	key := cacheKey(source, query)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = memoryEntry{
		jobs:      jobs,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Clear evicts every entry immediately.
func (c *MemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]memoryEntry)
}

// cacheKey joins source and query with a separator that cannot appear in
// either, so ("a", "b_c") and ("a_b", "c") stay distinct.
func cacheKey(source, query string) string {
	return source + "\x00" + query
}
