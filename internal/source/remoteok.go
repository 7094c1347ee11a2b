package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jobradar/jobradar/internal/model"
)

const remoteOKBaseURL = "https://remoteok.com/api"

// remoteOKTagList is the fixed set of tags probed in tag mode.
var remoteOKTagList = []string{
	"developer", "engineer", "design", "marketing", "sales",
	"devops", "frontend", "backend", "fullstack",
}

// remoteOKJob represents a single job in the RemoteOK API response.
// The first array element is a legal notice, not a job; callers skip it.
type remoteOKJob struct {
	ID          json.Number `json:"id"`
	Position    string      `json:"position"`
	Company     string      `json:"company"`
	Location    string      `json:"location"`
	Description string      `json:"description"`
	Tags        []string    `json:"tags"`
	URL         string      `json:"url"`
	SalaryMin   int64       `json:"salary_min"`
	SalaryMax   int64       `json:"salary_max"`
	Date        string      `json:"date"`
}

// RemoteOK fetches jobs from the RemoteOK public API. RemoteOK has no
// server-side keyword search, so default mode pulls the board and pre-filters
// locally. Tag mode instead queries up to two tags matching the keywords,
// which reaches listings the plain board feed truncates away.
type RemoteOK struct {
	baseURL string
	client  *http.Client
	byTags  bool
}

// NewRemoteOK creates a RemoteOK adapter. byTags selects tag-probing mode.
func NewRemoteOK(client *http.Client, byTags bool) *RemoteOK {
	return &RemoteOK{baseURL: remoteOKBaseURL, client: client, byTags: byTags}
}

func (a *RemoteOK) Name() string {
	if a.byTags {
		return "remoteok-tags"
	}
	return "remoteok"
}

// Fetch retrieves jobs from RemoteOK and normalizes them into the unified
// Job model.
func (a *RemoteOK) Fetch(ctx context.Context, keywords string, limit int) ([]model.Job, error) {
	if a.byTags {
		return a.fetchByTags(ctx, keywords, limit)
	}

	raw, err := a.fetchBoard(ctx, a.baseURL)
	if err != nil {
		return nil, err
	}

	jobs := make([]model.Job, 0, limit)
	for _, rj := range raw {
		if rj.Position == "" {
			continue
		}
		if !matchesKeywords(keywords, rj.Position, rj.Company, rj.Description, strings.Join(rj.Tags, " ")) {
			continue
		}
		if len(jobs) >= limit {
			break
		}
		jobs = append(jobs, a.normalize(rj, "remoteok", "RemoteOK", firstTags(rj.Tags, 2)))
	}
	return jobs, nil
}

// fetchByTags probes up to two tags derived from the keywords. A tag matches
// when it contains a keyword token or vice versa; with no match it falls back
// to "developer".
func (a *RemoteOK) fetchByTags(ctx context.Context, keywords string, limit int) ([]model.Job, error) {
	tokens := strings.Fields(strings.ToLower(keywords))
	var matching []string
	for _, tag := range remoteOKTagList {
		for _, tok := range tokens {
			if strings.Contains(tag, tok) || strings.Contains(tok, tag) {
				matching = append(matching, tag)
				break
			}
		}
	}
	if len(matching) == 0 {
		matching = []string{"developer"}
	}
	if len(matching) > 2 {
		matching = matching[:2]
	}

	var jobs []model.Job
	for _, tag := range matching {
		raw, err := a.fetchBoard(ctx, a.baseURL+"?tag="+tag)
		if err != nil {
			// A failed tag probe should not sink the other tag's results.
			continue
		}
		for _, rj := range raw {
			if rj.Position == "" {
				continue
			}
			jobs = append(jobs, a.normalize(rj, "remoteok_tag", "RemoteOK-Tags", tag))
		}
	}

	if len(jobs) > limit {
		jobs = jobs[:limit]
	}
	return jobs, nil
}

func (a *RemoteOK) fetchBoard(ctx context.Context, rawURL string) ([]remoteOKJob, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("remoteok fetch: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	var raw []remoteOKJob
	if err := getJSON(req, a.client, &raw); err != nil {
		return nil, fmt.Errorf("remoteok fetch: %w", err)
	}

	// First element is the API legal notice.
	if len(raw) > 0 {
		raw = raw[1:]
	}
	return raw, nil
}

func (a *RemoteOK) normalize(rj remoteOKJob, idPrefix, sourceName, category string) model.Job {
	location := rj.Location
	if location == "" {
		location = "Remote Worldwide"
	}

	jobURL := rj.URL
	if jobURL == "" {
		jobURL = fmt.Sprintf("https://remoteok.com/remote-jobs/%s", rj.ID)
	}

	salary := ""
	if rj.SalaryMin > 0 && rj.SalaryMax > 0 {
		salary = fmt.Sprintf("$%d - $%d/yr", rj.SalaryMin, rj.SalaryMax)
	}

	return model.Job{
		ID:          fmt.Sprintf("%s_%s", idPrefix, rj.ID),
		Title:       rj.Position,
		Company:     rj.Company,
		Location:    location,
		Description: cleanDescription(rj.Description),
		URL:         jobURL,
		Salary:      salary,
		PostedAt:    parseTime(rj.Date, time.RFC3339, "2006-01-02T15:04:05-07:00"),
		Source:      sourceName,
		Category:    category,
	}
}

// firstTags joins the first n tags with ", ".
func firstTags(tags []string, n int) string {
	if len(tags) > n {
		tags = tags[:n]
	}
	return strings.Join(tags, ", ")
}
