package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jobradar/jobradar/internal/model"
)

const himalayasBaseURL = "https://himalayas.app/jobs/api"

// himalayasJob represents a single job in the Himalayas API response.
type himalayasJob struct {
	ID                   int64    `json:"id"`
	Title                string   `json:"title"`
	CompanyName          string   `json:"companyName"`
	LocationRestrictions []string `json:"locationRestrictions"`
	Description          string   `json:"description"`
	ApplicationLink      string   `json:"applicationLink"`
	MinSalary            int64    `json:"minSalary"`
	MaxSalary            int64    `json:"maxSalary"`
	PubDate              string   `json:"pubDate"`
	PostedAt             string   `json:"postedAt"`
	Categories           []string `json:"categories"`
}

// himalayasResponse is the top-level Himalayas API response.
type himalayasResponse struct {
	Jobs []himalayasJob `json:"jobs"`
}

// Himalayas fetches remote jobs from the Himalayas API using its server-side
// search.
type Himalayas struct {
	baseURL string
	client  *http.Client
}

// NewHimalayas creates a Himalayas adapter.
func NewHimalayas(client *http.Client) *Himalayas {
	return &Himalayas{baseURL: himalayasBaseURL, client: client}
}

func (a *Himalayas) Name() string { return "himalayas" }

// Fetch retrieves jobs from Himalayas and normalizes them into the unified
// Job model.
func (a *Himalayas) Fetch(ctx context.Context, keywords string, limit int) ([]model.Job, error) {
	params := url.Values{}
	params.Set("limit", fmt.Sprintf("%d", limit))
	params.Set("q", keywords)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("himalayas fetch: %w", err)
	}

	var resp himalayasResponse
	if err := getJSON(req, a.client, &resp); err != nil {
		return nil, fmt.Errorf("himalayas fetch: %w", err)
	}

	jobs := make([]model.Job, 0, len(resp.Jobs))
	for _, hj := range resp.Jobs {
		location := strings.Join(hj.LocationRestrictions, ", ")
		if location == "" {
			location = "Remote"
		}

		jobURL := hj.ApplicationLink
		if jobURL == "" {
			jobURL = fmt.Sprintf("https://himalayas.app/jobs/%d", hj.ID)
		}

		salary := ""
		if hj.MinSalary > 0 && hj.MaxSalary > 0 {
			salary = fmt.Sprintf("$%d - $%d/yr", hj.MinSalary, hj.MaxSalary)
		}

		posted := hj.PubDate
		if posted == "" {
			posted = hj.PostedAt
		}

		jobs = append(jobs, model.Job{
			ID:          fmt.Sprintf("himalayas_%d", hj.ID),
			Title:       hj.Title,
			Company:     hj.CompanyName,
			Location:    location,
			Description: cleanDescription(hj.Description),
			URL:         jobURL,
			Salary:      salary,
			PostedAt:    parseTime(posted, time.RFC3339, "2006-01-02"),
			Source:      "Himalayas",
			Category:    strings.Join(hj.Categories, ", "),
		})
	}

	return jobs, nil
}
