package aggregate

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jobradar/jobradar/internal/model"
	"github.com/jobradar/jobradar/internal/source"
)

// stubFetcher is a canned model.Fetcher for orchestrator tests.
type stubFetcher struct {
	name string
	jobs []model.Job
	err  error
	wait time.Duration
}

func (s *stubFetcher) Name() string { return s.name }

func (s *stubFetcher) Fetch(ctx context.Context, keywords string, limit int) ([]model.Job, error) {
	if s.wait > 0 {
		select {
		case <-time.After(s.wait):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.jobs, s.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func regs(fetchers ...*stubFetcher) []source.Registration {
	out := make([]source.Registration, len(fetchers))
	for i, f := range fetchers {
		out[i] = source.Registration{Fetcher: f, Limit: 10}
	}
	return out
}

func TestFetchAll_MergesInRegistrationOrder(t *testing.T) {
	o := NewOrchestrator(regs(
		&stubFetcher{name: "slow", jobs: []model.Job{{ID: "s1"}, {ID: "s2"}}, wait: 30 * time.Millisecond},
		&stubFetcher{name: "fast", jobs: []model.Job{{ID: "f1"}}},
	), time.Second, testLogger())

	jobs, stats := o.FetchAll(context.Background(), "go")

	if len(jobs) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(jobs))
	}
	// Registration order, not completion order.
	for i, want := range []string{"s1", "s2", "f1"} {
		if jobs[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, jobs[i].ID)
		}
	}
	if stats["slow"] != 2 || stats["fast"] != 1 {
		t.Errorf("unexpected stats: %v", stats)
	}
}

func TestFetchAll_FailuresDoNotSinkSiblings(t *testing.T) {
	o := NewOrchestrator(regs(
		&stubFetcher{name: "ok1", jobs: []model.Job{{ID: "a"}}},
		&stubFetcher{name: "boom", err: errors.New("connection refused")},
		&stubFetcher{name: "ok2", jobs: []model.Job{{ID: "b"}}},
	), time.Second, testLogger())

	jobs, stats := o.FetchAll(context.Background(), "go")

	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].ID != "a" || jobs[1].ID != "b" {
		t.Errorf("unexpected merge: %v", jobs)
	}
	if stats["boom"] != 0 {
		t.Errorf("expected zero count for failed source, got %d", stats["boom"])
	}
}

func TestFetchAll_AllFail(t *testing.T) {
	o := NewOrchestrator(regs(
		&stubFetcher{name: "x", err: errors.New("down")},
		&stubFetcher{name: "y", err: errors.New("down")},
	), time.Second, testLogger())

	jobs, stats := o.FetchAll(context.Background(), "go")

	if len(jobs) != 0 {
		t.Fatalf("expected no jobs, got %d", len(jobs))
	}
	if stats["x"] != 0 || stats["y"] != 0 {
		t.Errorf("unexpected stats: %v", stats)
	}
}

func TestFetchAll_TimeoutIsPerSource(t *testing.T) {
	o := NewOrchestrator(regs(
		&stubFetcher{name: "stuck", jobs: []model.Job{{ID: "never"}}, wait: 5 * time.Second},
		&stubFetcher{name: "quick", jobs: []model.Job{{ID: "q"}}},
	), 50*time.Millisecond, testLogger())

	start := time.Now()
	jobs, stats := o.FetchAll(context.Background(), "go")

	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("fetch did not respect the per-source timeout, took %v", elapsed)
	}
	if len(jobs) != 1 || jobs[0].ID != "q" {
		t.Fatalf("expected only the quick source's job, got %v", jobs)
	}
	if stats["stuck"] != 0 {
		t.Errorf("expected zero count for timed-out source, got %d", stats["stuck"])
	}
}
