package source

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jobradar/jobradar/internal/model"
)

const arbeitnowBaseURL = "https://www.arbeitnow.com/api/job-board-api"

// arbeitnowJob represents a single job in the Arbeitnow API response.
type arbeitnowJob struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	CompanyName string   `json:"company_name"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Remote      bool     `json:"remote"`
	URL         string   `json:"url"`
	CreatedAt   int64    `json:"created_at"` // unix seconds
}

// arbeitnowResponse is the top-level Arbeitnow API response.
type arbeitnowResponse struct {
	Data []arbeitnowJob `json:"data"`
}

// Arbeitnow fetches European jobs from the Arbeitnow job board API. The API
// has no keyword search, so both modes pre-filter locally; remoteOnly mode
// additionally keeps remote postings only.
type Arbeitnow struct {
	baseURL    string
	client     *http.Client
	remoteOnly bool
}

// NewArbeitnow creates an Arbeitnow adapter.
func NewArbeitnow(client *http.Client, remoteOnly bool) *Arbeitnow {
	return &Arbeitnow{baseURL: arbeitnowBaseURL, client: client, remoteOnly: remoteOnly}
}

func (a *Arbeitnow) Name() string {
	if a.remoteOnly {
		return "arbeitnow-remote"
	}
	return "arbeitnow"
}

// Fetch retrieves jobs from Arbeitnow and normalizes them into the unified
// Job model.
func (a *Arbeitnow) Fetch(ctx context.Context, keywords string, limit int) ([]model.Job, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("arbeitnow fetch: %w", err)
	}

	var resp arbeitnowResponse
	if err := getJSON(req, a.client, &resp); err != nil {
		return nil, fmt.Errorf("arbeitnow fetch: %w", err)
	}

	idPrefix := "arbeitnow"
	if a.remoteOnly {
		idPrefix = "arbeitnow_extra"
	}

	jobs := make([]model.Job, 0, limit)
	for _, aj := range resp.Data {
		if a.remoteOnly && !aj.Remote {
			continue
		}
		if !matchesKeywords(keywords, aj.Title, aj.CompanyName, aj.Description, strings.Join(aj.Tags, " ")) {
			continue
		}
		if len(jobs) >= limit {
			break
		}

		location := aj.Location
		if location == "" {
			switch {
			case a.remoteOnly:
				location = "Remote Europe"
			case aj.Remote:
				location = "Remote"
			default:
				location = "Europe"
			}
		}

		var postedAt *time.Time
		if aj.CreatedAt > 0 {
			t := time.Unix(aj.CreatedAt, 0).UTC()
			postedAt = &t
		}

		jobs = append(jobs, model.Job{
			ID:          fmt.Sprintf("%s_%s", idPrefix, aj.Slug),
			Title:       aj.Title,
			Company:     aj.CompanyName,
			Location:    location,
			Description: cleanDescription(aj.Description),
			URL:         aj.URL,
			PostedAt:    postedAt,
			Source:      a.sourceName(),
			Category:    firstTags(aj.Tags, 2),
		})
	}

	return jobs, nil
}

func (a *Arbeitnow) sourceName() string {
	if a.remoteOnly {
		return "Arbeitnow-Extra"
	}
	return "Arbeitnow"
}
