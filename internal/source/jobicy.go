package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/jobradar/jobradar/internal/model"
)

const jobicyBaseURL = "https://jobicy.com/api/v2/remote-jobs"

// jobicyJob represents a single job in the Jobicy API response.
type jobicyJob struct {
	ID              int64  `json:"id"`
	JobTitle        string `json:"jobTitle"`
	CompanyName     string `json:"companyName"`
	JobGeo          string `json:"jobGeo"`
	JobDescription  string `json:"jobDescription"`
	JobIndustry     string `json:"jobIndustry"`
	URL             string `json:"url"`
	AnnualSalaryMin int64  `json:"annualSalaryMin"`
	AnnualSalaryMax int64  `json:"annualSalaryMax"`
	PubDate         string `json:"pubDate"`
}

// jobicyResponse is the top-level Jobicy API response.
type jobicyResponse struct {
	Jobs []jobicyJob `json:"jobs"`
}

// Jobicy fetches remote jobs from the Jobicy API. Search mode passes the
// keywords as a tag query; browse mode pulls an untagged page and pre-filters
// locally, catching jobs whose tags do not line up with the keywords.
type Jobicy struct {
	baseURL string
	client  *http.Client
	browse  bool
}

// NewJobicy creates a Jobicy adapter.
func NewJobicy(client *http.Client, browse bool) *Jobicy {
	return &Jobicy{baseURL: jobicyBaseURL, client: client, browse: browse}
}

func (a *Jobicy) Name() string {
	if a.browse {
		return "jobicy-browse"
	}
	return "jobicy"
}

// Fetch retrieves jobs from Jobicy and normalizes them into the unified
// Job model.
func (a *Jobicy) Fetch(ctx context.Context, keywords string, limit int) ([]model.Job, error) {
	params := url.Values{}
	if a.browse {
		params.Set("count", "100")
	} else {
		params.Set("count", fmt.Sprintf("%d", limit))
		params.Set("tag", keywords)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("jobicy fetch: %w", err)
	}

	var resp jobicyResponse
	if err := getJSON(req, a.client, &resp); err != nil {
		return nil, fmt.Errorf("jobicy fetch: %w", err)
	}

	idPrefix, sourceName := "jobicy", "Jobicy"
	if a.browse {
		idPrefix, sourceName = "jobicy_extra", "Jobicy-Extra"
	}

	jobs := make([]model.Job, 0, len(resp.Jobs))
	for _, jj := range resp.Jobs {
		if a.browse {
			if !matchesKeywords(keywords, jj.JobTitle, jj.CompanyName, jj.JobDescription, jj.JobIndustry) {
				continue
			}
			if len(jobs) >= limit {
				break
			}
		}

		location := jj.JobGeo
		if location == "" {
			location = "Remote"
		}

		salary := ""
		if jj.AnnualSalaryMin > 0 && jj.AnnualSalaryMax > 0 {
			salary = fmt.Sprintf("$%d - $%d/yr", jj.AnnualSalaryMin, jj.AnnualSalaryMax)
		}

		jobs = append(jobs, model.Job{
			ID:          fmt.Sprintf("%s_%d", idPrefix, jj.ID),
			Title:       jj.JobTitle,
			Company:     jj.CompanyName,
			Location:    location,
			Description: cleanDescription(jj.JobDescription),
			URL:         jj.URL,
			Salary:      salary,
			PostedAt:    parseTime(jj.PubDate, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"),
			Source:      sourceName,
			Category:    jj.JobIndustry,
		})
	}

	return jobs, nil
}
