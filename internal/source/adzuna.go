package source

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/jobradar/jobradar/internal/model"
)

const adzunaBaseURL = "https://api.adzuna.com/v1/api/jobs/us/search/1"

// adzunaJob represents a single job in the Adzuna API response.
type adzunaJob struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Company struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
	Description string  `json:"description"`
	RedirectURL string  `json:"redirect_url"`
	SalaryMin   float64 `json:"salary_min"`
	SalaryMax   float64 `json:"salary_max"`
	Created     string  `json:"created"`
	Category    struct {
		Label string `json:"label"`
	} `json:"category"`
}

// adzunaResponse is the top-level Adzuna API response.
type adzunaResponse struct {
	Results []adzunaJob `json:"results"`
}

// Adzuna fetches jobs from the Adzuna search API. Both an app ID and an app
// key are required; with either missing the adapter stays offline and returns
// nothing without network I/O.
type Adzuna struct {
	baseURL string
	appID   string
	appKey  string
	client  *http.Client
}

// NewAdzuna creates an Adzuna adapter. Credentials may be empty.
func NewAdzuna(client *http.Client, appID, appKey string) *Adzuna {
	return &Adzuna{baseURL: adzunaBaseURL, appID: appID, appKey: appKey, client: client}
}

func (a *Adzuna) Name() string { return "adzuna" }

// Fetch retrieves jobs from Adzuna and normalizes them into the unified Job
// model.
func (a *Adzuna) Fetch(ctx context.Context, keywords string, limit int) ([]model.Job, error) {
	if a.appID == "" || a.appKey == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("app_id", a.appID)
	params.Set("app_key", a.appKey)
	params.Set("what", keywords)
	params.Set("results_per_page", fmt.Sprintf("%d", limit))
	params.Set("content_type", "application/json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("adzuna fetch: %w", err)
	}

	var resp adzunaResponse
	if err := getJSON(req, a.client, &resp); err != nil {
		return nil, fmt.Errorf("adzuna fetch: %w", err)
	}

	jobs := make([]model.Job, 0, len(resp.Results))
	for _, aj := range resp.Results {
		company := aj.Company.DisplayName
		if company == "" {
			company = "Company"
		}
		location := aj.Location.DisplayName
		if location == "" {
			location = "Various"
		}

		salary := ""
		if aj.SalaryMin > 0 && aj.SalaryMax > 0 {
			salary = fmt.Sprintf("$%.0f - $%.0f/yr", math.Round(aj.SalaryMin), math.Round(aj.SalaryMax))
		}

		jobs = append(jobs, model.Job{
			ID:          "adzuna_" + aj.ID,
			Title:       aj.Title,
			Company:     company,
			Location:    location,
			Description: cleanDescription(aj.Description),
			URL:         aj.RedirectURL,
			Salary:      salary,
			PostedAt:    parseTime(aj.Created, time.RFC3339, "2006-01-02T15:04:05"),
			Source:      "Adzuna",
			Category:    aj.Category.Label,
		})
	}

	return jobs, nil
}
