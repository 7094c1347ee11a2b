package fetchcache

import (
	"testing"
	"time"

	"github.com/jobradar/jobradar/internal/model"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(time.Minute)

	jobs := []model.Job{{ID: "1", Title: "Go Developer"}}
	c.Set("remotive", "go", jobs)

	got, ok := c.Get("remotive", "go")
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("unexpected cached jobs: %v", got)
	}

	if _, ok := c.Get("remotive", "rust"); ok {
		t.Error("expected a miss for a different query")
	}
	if _, ok := c.Get("remoteok", "go"); ok {
		t.Error("expected a miss for a different source")
	}
}

func TestMemoryCache_TTLExpiry(t *testing.T) {
	c := NewMemoryCache(30 * time.Minute)

	base := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	current := base
	c.now = func() time.Time { return current }

	c.Set("remotive", "go", []model.Job{{ID: "1"}})

	current = base.Add(29 * time.Minute)
	if _, ok := c.Get("remotive", "go"); !ok {
		t.Fatal("expected a hit inside the TTL")
	}

	current = base.Add(31 * time.Minute)
	if _, ok := c.Get("remotive", "go"); ok {
		t.Fatal("expected a miss after the TTL")
	}

	// The expired entry is gone even if the clock goes backwards.
	current = base
	if _, ok := c.Get("remotive", "go"); ok {
		t.Fatal("expected the expired entry to be evicted")
	}
}

func TestMemoryCache_Clear(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	c.Set("a", "q", []model.Job{{ID: "1"}})
	c.Set("b", "q", []model.Job{{ID: "2"}})

	c.Clear()

	if _, ok := c.Get("a", "q"); ok {
		t.Error("expected a miss after Clear")
	}
	if _, ok := c.Get("b", "q"); ok {
		t.Error("expected a miss after Clear")
	}
}

func TestMemoryCache_DefaultTTL(t *testing.T) {
	c := NewMemoryCache(0)
	if c.ttl != DefaultTTL {
		t.Errorf("expected default TTL %v, got %v", DefaultTTL, c.ttl)
	}
}

func TestCacheKey_NoCollisions(t *testing.T) {
	if cacheKey("a", "b_c") == cacheKey("a_b", "c") {
		t.Error("expected distinct keys for shifted separators")
	}
}
