// Package engine is the public face of the aggregation and ranking pipeline:
// fan out to all sources, filter, dedup, rank, suggest.
package engine

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/jobradar/jobradar/internal/aggregate"
	"github.com/jobradar/jobradar/internal/fetchcache"
	"github.com/jobradar/jobradar/internal/model"
	"github.com/jobradar/jobradar/internal/nlp"
	"github.com/jobradar/jobradar/internal/source"
)

// ErrNoKeywords is returned when a search is attempted with blank keywords.
// It is the only failure a caller ever sees from a search: every upstream
// failure mode is absorbed into a smaller result set.
var ErrNoKeywords = errors.New("search keywords are required")

// defaultLimit caps a search when the caller does not.
const defaultLimit = 500

// SearchOptions bundles the per-search knobs for AggregateJobs.
type SearchOptions struct {
	Limit      int    // overall result cap, default 500
	DateFilter string // one of aggregate.Windows, default "all"
}

// Engine owns the source registry and the fetch cache. It is safe for
// concurrent use; all search state is request-scoped.
type Engine struct {
	orchestrator *aggregate.Orchestrator
	cache        fetchcache.Cache
	names        []string
	logger       *slog.Logger
}

// New builds an engine over the given registrations. Every fetcher is
// wrapped with (source, query) memoization against cache.
func New(regs []source.Registration, cache fetchcache.Cache, fetchTimeout time.Duration, logger *slog.Logger) *Engine {
	wrapped := make([]source.Registration, len(regs))
	names := make([]string, len(regs))
	for i, reg := range regs {
		wrapped[i] = source.Registration{
			Fetcher: fetchcache.NewCachedFetcher(reg.Fetcher, cache, logger),
			Limit:   reg.Limit,
		}
		names[i] = reg.Fetcher.Name()
	}

	return &Engine{
		orchestrator: aggregate.NewOrchestrator(wrapped, fetchTimeout, logger),
		cache:        cache,
		names:        names,
		logger:       logger,
	}
}

// AggregateJobs runs the full collection pipeline: concurrent settle-all
// fetch across every source, recency filter, near-duplicate collapse, sort
// by posting date descending (undated jobs last), and truncation to the
// limit. Blank keywords are rejected before any source is invoked.
func (e *Engine) AggregateJobs(ctx context.Context, keywords string, opts SearchOptions) ([]model.Job, error) {
	if strings.TrimSpace(keywords) == "" {
		return nil, ErrNoKeywords
	}
	if opts.Limit <= 0 {
		opts.Limit = defaultLimit
	}
	if opts.DateFilter == "" {
		opts.DateFilter = "all"
	}

	jobs, stats := e.orchestrator.FetchAll(ctx, keywords)

	fetched := len(jobs)
	jobs = aggregate.FilterByDate(jobs, opts.DateFilter, time.Now())
	jobs = aggregate.Dedup(jobs)

	sort.SliceStable(jobs, func(i, j int) bool {
		ti, tj := jobs[i].PostedAt, jobs[j].PostedAt
		switch {
		case ti == nil:
			return false
		case tj == nil:
			return true
		default:
			return ti.After(*tj)
		}
	})

	if len(jobs) > opts.Limit {
		jobs = jobs[:opts.Limit]
	}

	e.logger.Info("aggregated jobs",
		"keywords", keywords,
		"date_filter", opts.DateFilter,
		"fetched", fetched,
		"unique", len(jobs),
		"sources_ok", countNonZero(stats),
	)
	return jobs, nil
}

// RankJobs annotates jobs with skills and relevance scores and sorts them by
// score descending. Blank keywords leave the order untouched with a neutral
// score.
func (e *Engine) RankJobs(jobs []model.Job, userKeywords string) []model.Job {
	return nlp.RankJobs(jobs, userKeywords)
}

// ExtractTopSkills returns the most common skills across the jobs, count
// descending.
func (e *Engine) ExtractTopSkills(jobs []model.Job, limit int) []nlp.SkillCount {
	return nlp.TopSkills(jobs, limit)
}

// SuggestKeywords derives refinement suggestions from the result set.
func (e *Engine) SuggestKeywords(jobs []model.Job, limit int) []string {
	return nlp.SuggestKeywords(jobs, limit)
}

// ClearCache evicts every cached fetch result immediately, process-wide.
func (e *Engine) ClearCache() {
	e.cache.Clear()
	e.logger.Info("fetch cache cleared")
}

// Sources returns the registered source names in registration order.
func (e *Engine) Sources() []string {
	return e.names
}

func countNonZero(stats map[string]int) int {
	n := 0
	for _, count := range stats {
		if count > 0 {
			n++
		}
	}
	return n
}
