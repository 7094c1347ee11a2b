package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/jobradar/jobradar/internal/model"
)

const landingJobsBaseURL = "https://landing.jobs/api/v1/jobs"

// landingJob represents a single job in the Landing.jobs API response, which
// is a bare JSON array.
type landingJob struct {
	ID          int64  `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	Company     struct {
		Name string `json:"name"`
	} `json:"company"`
	City        string `json:"city"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Salary      string `json:"salary"`
	PublishedAt string `json:"published_at"`
	RoleType    string `json:"role_type"`
}

// LandingJobs fetches European tech jobs from the Landing.jobs API.
type LandingJobs struct {
	baseURL string
	client  *http.Client
}

// NewLandingJobs creates a Landing.jobs adapter.
func NewLandingJobs(client *http.Client) *LandingJobs {
	return &LandingJobs{baseURL: landingJobsBaseURL, client: client}
}

func (a *LandingJobs) Name() string { return "landingjobs" }

// Fetch retrieves jobs from Landing.jobs and normalizes them into the
// unified Job model.
func (a *LandingJobs) Fetch(ctx context.Context, keywords string, limit int) ([]model.Job, error) {
	params := url.Values{}
	params.Set("limit", fmt.Sprintf("%d", limit))
	params.Set("q", keywords)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("landingjobs fetch: %w", err)
	}

	var results []landingJob
	if err := getJSON(req, a.client, &results); err != nil {
		return nil, fmt.Errorf("landingjobs fetch: %w", err)
	}

	if len(results) > limit {
		results = results[:limit]
	}

	jobs := make([]model.Job, 0, len(results))
	for _, lj := range results {
		id := fmt.Sprintf("landing_%d", lj.ID)
		if lj.ID == 0 {
			id = "landing_" + lj.Slug
		}

		company := lj.CompanyName
		if company == "" {
			company = lj.Company.Name
		}
		if company == "" {
			company = "Company"
		}

		location := lj.City
		if location == "" {
			location = "Remote"
		}

		jobURL := lj.URL
		if jobURL == "" {
			jobURL = "https://landing.jobs/job/" + lj.Slug
		}

		jobs = append(jobs, model.Job{
			ID:          id,
			Title:       lj.Title,
			Company:     company,
			Location:    location,
			Description: cleanDescription(lj.Description),
			URL:         jobURL,
			Salary:      lj.Salary,
			PostedAt:    parseTime(lj.PublishedAt, time.RFC3339),
			Source:      "LandingJobs",
			Category:    lj.RoleType,
		})
	}

	return jobs, nil
}
