package source

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jobradar/jobradar/internal/model"
)

const museBaseURL = "https://www.themuse.com/api/public/jobs"

// museJob represents a single job in The Muse API response.
type museJob struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Contents string `json:"contents"`
	Company  struct {
		Name string `json:"name"`
	} `json:"company"`
	Locations []struct {
		Name string `json:"name"`
	} `json:"locations"`
	Categories []struct {
		Name string `json:"name"`
	} `json:"categories"`
	Refs struct {
		LandingPage string `json:"landing_page"`
	} `json:"refs"`
	PublicationDate string `json:"publication_date"`
}

// museResponse is the top-level Muse API response.
type museResponse struct {
	Results []museJob `json:"results"`
}

// Muse fetches curated jobs from The Muse public API. The endpoint has no
// keyword parameter, so results are pre-filtered locally.
type Muse struct {
	baseURL string
	client  *http.Client
}

// NewMuse creates a Muse adapter.
func NewMuse(client *http.Client) *Muse {
	return &Muse{baseURL: museBaseURL, client: client}
}

func (a *Muse) Name() string { return "themuse" }

// Fetch retrieves jobs from The Muse and normalizes them into the unified
// Job model.
func (a *Muse) Fetch(ctx context.Context, keywords string, limit int) ([]model.Job, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"?page=1&descending=true", nil)
	if err != nil {
		return nil, fmt.Errorf("themuse fetch: %w", err)
	}

	var resp museResponse
	if err := getJSON(req, a.client, &resp); err != nil {
		return nil, fmt.Errorf("themuse fetch: %w", err)
	}

	jobs := make([]model.Job, 0, limit)
	for _, mj := range resp.Results {
		if !matchesKeywords(keywords, mj.Name, mj.Contents, mj.Company.Name) {
			continue
		}
		if len(jobs) >= limit {
			break
		}

		var locations, categories []string
		for _, l := range mj.Locations {
			locations = append(locations, l.Name)
		}
		for _, c := range mj.Categories {
			categories = append(categories, c.Name)
		}

		location := strings.Join(locations, ", ")
		if location == "" {
			location = "Various"
		}

		company := mj.Company.Name
		if company == "" {
			company = "Company"
		}

		jobURL := mj.Refs.LandingPage
		if jobURL == "" {
			jobURL = fmt.Sprintf("https://www.themuse.com/jobs/%d", mj.ID)
		}

		jobs = append(jobs, model.Job{
			ID:          fmt.Sprintf("muse_%d", mj.ID),
			Title:       mj.Name,
			Company:     company,
			Location:    location,
			Description: cleanDescription(mj.Contents),
			URL:         jobURL,
			PostedAt:    parseTime(mj.PublicationDate, time.RFC3339, "2006-01-02T15:04:05.000000Z"),
			Source:      "TheMuse",
			Category:    strings.Join(categories, ", "),
		})
	}

	return jobs, nil
}
