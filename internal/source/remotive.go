package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/jobradar/jobradar/internal/model"
)

const remotiveBaseURL = "https://remotive.com/api/remote-jobs"

// remotiveJob represents a single job in the Remotive API response.
type remotiveJob struct {
	ID                        int64  `json:"id"`
	Title                     string `json:"title"`
	CompanyName               string `json:"company_name"`
	CandidateRequiredLocation string `json:"candidate_required_location"`
	Description               string `json:"description"`
	URL                       string `json:"url"`
	Salary                    string `json:"salary"`
	PublicationDate           string `json:"publication_date"`
	Category                  string `json:"category"`
}

// remotiveResponse is the top-level Remotive API response.
type remotiveResponse struct {
	Jobs []remotiveJob `json:"jobs"`
}

// Remotive fetches jobs from the Remotive public API. In search mode the
// query goes to Remotive's server-side search. In browse mode the adapter
// pulls the whole board and pre-filters locally, which surfaces listings
// Remotive's own search misses.
type Remotive struct {
	baseURL string
	client  *http.Client
	browse  bool
}

// NewRemotive creates a Remotive adapter. browse selects board-wide browse
// mode instead of server-side search.
func NewRemotive(client *http.Client, browse bool) *Remotive {
	return &Remotive{baseURL: remotiveBaseURL, client: client, browse: browse}
}

func (a *Remotive) Name() string {
	if a.browse {
		return "remotive-browse"
	}
	return "remotive"
}

// Fetch retrieves jobs from Remotive and normalizes them into the unified
// Job model.
func (a *Remotive) Fetch(ctx context.Context, keywords string, limit int) ([]model.Job, error) {
	params := url.Values{}
	if a.browse {
		params.Set("limit", "200")
	} else {
		params.Set("search", keywords)
		params.Set("limit", fmt.Sprintf("%d", limit))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("remotive fetch: %w", err)
	}

	var resp remotiveResponse
	if err := getJSON(req, a.client, &resp); err != nil {
		return nil, fmt.Errorf("remotive fetch: %w", err)
	}

	idPrefix := "remotive"
	if a.browse {
		idPrefix = "remotive_extra"
	}

	jobs := make([]model.Job, 0, len(resp.Jobs))
	for _, rj := range resp.Jobs {
		if a.browse {
			if !matchesKeywords(keywords, rj.Title, rj.CompanyName, rj.Description, rj.Category) {
				continue
			}
			if len(jobs) >= limit {
				break
			}
		}

		location := rj.CandidateRequiredLocation
		if location == "" {
			location = "Worldwide"
		}

		jobs = append(jobs, model.Job{
			ID:          fmt.Sprintf("%s_%d", idPrefix, rj.ID),
			Title:       rj.Title,
			Company:     rj.CompanyName,
			Location:    location,
			Description: cleanDescription(rj.Description),
			URL:         rj.URL,
			Salary:      rj.Salary,
			PostedAt:    parseTime(rj.PublicationDate, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"),
			Source:      "Remotive",
			Category:    rj.Category,
		})
	}

	return jobs, nil
}
