package fetchcache

import (
	"context"
	"log/slog"

	"github.com/jobradar/jobradar/internal/model"
)

// Ensure CachedFetcher implements model.Fetcher.
var _ model.Fetcher = (*CachedFetcher)(nil)

// CachedFetcher is a decorator that memoizes successful fetches in a Cache
// before delegating to the wrapped Fetcher. Cache hits bypass the network
// entirely. Failed fetches are never cached.
type CachedFetcher struct {
	inner  model.Fetcher
	cache  Cache
	logger *slog.Logger
}

// NewCachedFetcher wraps a Fetcher with (source, query) memoization.
func NewCachedFetcher(inner model.Fetcher, cache Cache, logger *slog.Logger) *CachedFetcher {
	return &CachedFetcher{inner: inner, cache: cache, logger: logger}
}

// Name returns the wrapped fetcher's source name.
func (f *CachedFetcher) Name() string {
	return f.inner.Name()
}

// Fetch returns the cached result for (source, keywords) when valid,
// otherwise delegates and stores the outcome on success.
func (f *CachedFetcher) Fetch(ctx context.Context, keywords string, limit int) ([]model.Job, error) {
	if jobs, ok := f.cache.Get(f.inner.Name(), keywords); ok {
		f.logger.Debug("fetch cache hit",
			"source", f.inner.Name(),
			"keywords", keywords,
			"jobs", len(jobs),
		)
		return jobs, nil
	}

	jobs, err := f.inner.Fetch(ctx, keywords, limit)
	if err != nil {
		return nil, err
	}

	f.cache.Set(f.inner.Name(), keywords, jobs)
	return jobs, nil
}
