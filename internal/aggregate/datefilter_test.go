package aggregate

import (
	"testing"
	"time"

	"github.com/jobradar/jobradar/internal/model"
)

func datedJob(id string, postedAt time.Time) model.Job {
	return model.Job{ID: id, PostedAt: &postedAt}
}

func TestFilterByDate(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	jobs := []model.Job{
		datedJob("hours-ago", now.Add(-6*time.Hour)),
		datedJob("two-days", now.Add(-48*time.Hour)),
		datedJob("ten-days", now.Add(-10*24*time.Hour)),
		datedJob("ancient", now.Add(-90*24*time.Hour)),
		{ID: "undated"},
	}

	tests := []struct {
		window string
		want   []string
	}{
		{"all", []string{"hours-ago", "two-days", "ten-days", "ancient", "undated"}},
		{"", []string{"hours-ago", "two-days", "ten-days", "ancient", "undated"}},
		{"24h", []string{"hours-ago", "undated"}},
		{"3d", []string{"hours-ago", "two-days", "undated"}},
		{"7d", []string{"hours-ago", "two-days", "undated"}},
		{"14d", []string{"hours-ago", "two-days", "ten-days", "undated"}},
		{"30d", []string{"hours-ago", "two-days", "ten-days", "undated"}},
		// Unrecognized windows fall back to 30 days.
		{"1y", []string{"hours-ago", "two-days", "ten-days", "undated"}},
	}

	for _, tc := range tests {
		t.Run(tc.window, func(t *testing.T) {
			got := FilterByDate(jobs, tc.window, now)
			if len(got) != len(tc.want) {
				t.Fatalf("window %q: expected %d jobs, got %d", tc.window, len(tc.want), len(got))
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Errorf("window %q position %d: expected %s, got %s", tc.window, i, id, got[i].ID)
				}
			}
		})
	}
}

func TestFilterByDate_CutoffIsInclusive(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	onCutoff := datedJob("edge", now.Add(-24*time.Hour))

	got := FilterByDate([]model.Job{onCutoff}, "24h", now)
	if len(got) != 1 {
		t.Fatal("expected a job exactly on the cutoff to pass")
	}
}

func TestWindows(t *testing.T) {
	if Windows[0] != "all" {
		t.Errorf("expected the first window to be all, got %s", Windows[0])
	}
	for _, w := range Windows[1:] {
		if _, ok := windowDays[w]; !ok {
			t.Errorf("window %s listed but not mapped", w)
		}
	}
}
