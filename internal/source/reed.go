package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/jobradar/jobradar/internal/model"
)

const reedBaseURL = "https://www.reed.co.uk/api/1.0/search"

// reedJob represents a single job in the Reed API response.
type reedJob struct {
	JobID          int64   `json:"jobId"`
	JobTitle       string  `json:"jobTitle"`
	EmployerName   string  `json:"employerName"`
	LocationName   string  `json:"locationName"`
	JobDescription string  `json:"jobDescription"`
	JobURL         string  `json:"jobUrl"`
	MinimumSalary  float64 `json:"minimumSalary"`
	MaximumSalary  float64 `json:"maximumSalary"`
	Date           string  `json:"date"`
}

// reedResponse is the top-level Reed API response.
type reedResponse struct {
	Results []reedJob `json:"results"`
}

// Reed fetches UK jobs from the Reed API. Reed requires an API key sent as
// the basic-auth username; without one the adapter stays offline and returns
// nothing, which is an expected deployment state rather than an error.
type Reed struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewReed creates a Reed adapter. apiKey may be empty.
func NewReed(client *http.Client, apiKey string) *Reed {
	return &Reed{baseURL: reedBaseURL, apiKey: apiKey, client: client}
}

func (a *Reed) Name() string { return "reed" }

// Fetch retrieves jobs from Reed and normalizes them into the unified Job
// model. With no API key configured it returns immediately without network I/O.
func (a *Reed) Fetch(ctx context.Context, keywords string, limit int) ([]model.Job, error) {
	if a.apiKey == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("keywords", keywords)
	params.Set("resultsToTake", fmt.Sprintf("%d", limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("reed fetch: %w", err)
	}
	req.SetBasicAuth(a.apiKey, "")

	var resp reedResponse
	if err := getJSON(req, a.client, &resp); err != nil {
		return nil, fmt.Errorf("reed fetch: %w", err)
	}

	jobs := make([]model.Job, 0, len(resp.Results))
	for _, rj := range resp.Results {
		location := rj.LocationName
		if location == "" {
			location = "UK"
		}

		salary := ""
		if rj.MinimumSalary > 0 && rj.MaximumSalary > 0 {
			salary = fmt.Sprintf("£%.0f - £%.0f", rj.MinimumSalary, rj.MaximumSalary)
		}

		jobs = append(jobs, model.Job{
			ID:          fmt.Sprintf("reed_%d", rj.JobID),
			Title:       rj.JobTitle,
			Company:     rj.EmployerName,
			Location:    location,
			Description: cleanDescription(rj.JobDescription),
			URL:         rj.JobURL,
			Salary:      salary,
			PostedAt:    parseTime(rj.Date, "02/01/2006", time.RFC3339),
			Source:      "Reed",
		})
	}

	return jobs, nil
}
