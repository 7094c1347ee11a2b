package model

import (
	"context"
	"time"
)

// Unified representation of a job listing from any source.
type Job struct {
	ID          string     `json:"id"`          // source-namespaced, e.g. "remotive_12345"
	Title       string     `json:"title"`       // job title
	Company     string     `json:"company"`     // company name
	Location    string     `json:"location"`    // location string
	Description string     `json:"description"` // plain text, HTML stripped, capped
	URL         string     `json:"url"`         // direct listing link
	Salary      string     `json:"salary"`      // free-text salary, "" if unknown
	PostedAt    *time.Time `json:"postedDate"`  // nullable (not all sources provide this)
	Source      string     `json:"source"`      // provenance tag
	Category    string     `json:"category"`    // provider category or tags

	// Populated by ranking; zero until then.
	Skills         []string `json:"skills,omitempty"`
	RelevanceScore float64  `json:"relevanceScore"`
}

// Fetcher fetches job listings matching the given keywords from one source.
// limit bounds the number of results a single call may return.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context, keywords string, limit int) ([]Job, error)
}
