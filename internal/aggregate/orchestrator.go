// Package aggregate fans a search out across every registered source and
// shapes the merged result: settle-all fetch, recency filter, near-duplicate
// collapse.
package aggregate

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jobradar/jobradar/internal/model"
	"github.com/jobradar/jobradar/internal/source"
)

// Orchestrator invokes every registered source concurrently and merges
// whatever settles. One source failing or timing out never cancels or delays
// its siblings; failures downgrade to an empty contribution.
type Orchestrator struct {
	sources []source.Registration
	timeout time.Duration
	logger  *slog.Logger
}

// NewOrchestrator creates an orchestrator over the given registrations.
// timeout bounds each individual fetch.
func NewOrchestrator(sources []source.Registration, timeout time.Duration, logger *slog.Logger) *Orchestrator {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Orchestrator{sources: sources, timeout: timeout, logger: logger}
}

type outcome struct {
	jobs []model.Job
	err  error
}

// FetchAll launches all source fetches concurrently, waits for every one to
// settle, and concatenates results in registration order (not completion
// order). The returned stats map holds the per-source result count, zero for
// failed sources.
func (o *Orchestrator) FetchAll(ctx context.Context, keywords string) ([]model.Job, map[string]int) {
	outcomes := make([]outcome, len(o.sources))

	var wg sync.WaitGroup
	for i, reg := range o.sources {
		wg.Add(1)
		go func() {
			defer wg.Done()

			fetchCtx, cancel := context.WithTimeout(ctx, o.timeout)
			defer cancel()

			jobs, err := reg.Fetcher.Fetch(fetchCtx, keywords, reg.Limit)
			outcomes[i] = outcome{jobs: jobs, err: err}
		}()
	}
	wg.Wait()

	var combined []model.Job
	stats := make(map[string]int, len(o.sources))
	for i, reg := range o.sources {
		name := reg.Fetcher.Name()
		if outcomes[i].err != nil {
			o.logger.Warn("source fetch failed",
				"source", name,
				"error", outcomes[i].err,
			)
			stats[name] = 0
			continue
		}
		stats[name] = len(outcomes[i].jobs)
		combined = append(combined, outcomes[i].jobs...)
	}

	o.logger.Info("fetched all sources",
		"sources", len(o.sources),
		"jobs", len(combined),
	)
	return combined, stats
}
