package aggregate

import (
	"regexp"
	"strings"

	"github.com/jobradar/jobradar/internal/model"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]`)

// Dedup collapses near-duplicate postings: two jobs sharing a normalized
// title+company key are the same posting syndicated to multiple boards. The
// first occurrence in input order wins. This is a heuristic identity match,
// not exact identity: two genuinely different openings with a generic title
// at the same company also collapse, an accepted approximation.
func Dedup(jobs []model.Job) []model.Job {
	seen := make(map[string]struct{}, len(jobs))
	unique := make([]model.Job, 0, len(jobs))
	for _, job := range jobs {
		key := dedupKey(job)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, job)
	}
	return unique
}

// dedupKey normalizes title (first 50 alphanumeric chars) and company (first
// 30), lowercased, joined with "_". Location, source, and posting date are
// deliberately ignored.
func dedupKey(job model.Job) string {
	title := truncate(nonAlphanumeric.ReplaceAllString(strings.ToLower(job.Title), ""), 50)
	company := truncate(nonAlphanumeric.ReplaceAllString(strings.ToLower(job.Company), ""), 30)
	return title + "_" + company
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
