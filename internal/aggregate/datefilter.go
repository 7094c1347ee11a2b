package aggregate

import (
	"time"

	"github.com/jobradar/jobradar/internal/model"
)

// Windows lists the recognized date-filter values in display order.
var Windows = []string{"all", "24h", "3d", "7d", "14d", "30d"}

var windowDays = map[string]int{
	"24h": 1,
	"3d":  3,
	"7d":  7,
	"14d": 14,
	"30d": 30,
}

// FilterByDate keeps jobs posted within the named window before now.
// "all" (or empty) passes everything through; an unrecognized window falls
// back to 30 days. Jobs without a posting date always pass: a source's
// missing or malformed date must never silently drop its listings.
func FilterByDate(jobs []model.Job, window string, now time.Time) []model.Job {
	if window == "" || window == "all" {
		return jobs
	}

	days, ok := windowDays[window]
	if !ok {
		days = 30
	}
	cutoff := now.Add(-time.Duration(days) * 24 * time.Hour)

	kept := make([]model.Job, 0, len(jobs))
	for _, job := range jobs {
		if job.PostedAt == nil || !job.PostedAt.Before(cutoff) {
			kept = append(kept, job)
		}
	}
	return kept
}
