package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/jobradar/jobradar/internal/model"
)

const hnSearchBaseURL = "https://hn.algolia.com/api/v1"

// HNMode selects which slice of Hacker News an adapter instance covers.
type HNMode int

const (
	// HNJobs searches official job postings (Algolia tags=job).
	HNJobs HNMode = iota
	// HNHiringStories searches "<keywords> hiring" stories by relevance.
	HNHiringStories
	// HNHiringPosts searches recent stories and comments mentioning hiring.
	HNHiringPosts
)

// hnHit represents a single hit in the Algolia HN search response.
type hnHit struct {
	ObjectID    string `json:"objectID"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	StoryText   string `json:"story_text"`
	CommentText string `json:"comment_text"`
	URL         string `json:"url"`
	CreatedAt   string `json:"created_at"`
}

// hnResponse is the top-level Algolia HN search response.
type hnResponse struct {
	Hits []hnHit `json:"hits"`
}

// HackerNews fetches startup hiring posts via the Algolia HN search API.
// Three modes cover the ground the web UI splits across job postings, hiring
// stories, and "Who is hiring?" comment threads.
type HackerNews struct {
	baseURL string
	client  *http.Client
	mode    HNMode
}

// NewHackerNews creates a HackerNews adapter for the given mode.
func NewHackerNews(client *http.Client, mode HNMode) *HackerNews {
	return &HackerNews{baseURL: hnSearchBaseURL, client: client, mode: mode}
}

func (a *HackerNews) Name() string {
	switch a.mode {
	case HNHiringStories:
		return "hn-hiring-stories"
	case HNHiringPosts:
		return "hn-hiring-posts"
	default:
		return "hackernews"
	}
}

// Fetch retrieves hiring posts from Algolia and normalizes them into the
// unified Job model.
func (a *HackerNews) Fetch(ctx context.Context, keywords string, limit int) ([]model.Job, error) {
	endpoint, params := a.query(keywords, limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("hackernews fetch: %w", err)
	}

	var resp hnResponse
	if err := getJSON(req, a.client, &resp); err != nil {
		return nil, fmt.Errorf("hackernews fetch: %w", err)
	}

	switch a.mode {
	case HNHiringStories:
		return a.normalizeHiringStories(resp.Hits, keywords, limit), nil
	case HNHiringPosts:
		return a.normalizeHiringPosts(resp.Hits, keywords, limit), nil
	default:
		return a.normalizeJobs(resp.Hits, limit), nil
	}
}

func (a *HackerNews) query(keywords string, limit int) (string, url.Values) {
	params := url.Values{}
	switch a.mode {
	case HNHiringStories:
		params.Set("query", keywords+" hiring")
		params.Set("tags", "story")
		params.Set("hitsPerPage", fmt.Sprintf("%d", limit))
		return a.baseURL + "/search", params
	case HNHiringPosts:
		params.Set("query", "hiring "+keywords)
		params.Set("tags", "(story,comment)")
		params.Set("hitsPerPage", fmt.Sprintf("%d", min(limit*2, 100)))
		return a.baseURL + "/search_by_date", params
	default:
		params.Set("query", keywords)
		params.Set("tags", "job")
		params.Set("hitsPerPage", fmt.Sprintf("%d", min(limit, 100)))
		return a.baseURL + "/search_by_date", params
	}
}

func (a *HackerNews) normalizeJobs(hits []hnHit, limit int) []model.Job {
	jobs := make([]model.Job, 0, len(hits))
	for _, hit := range hits {
		if hit.Title == "" && hit.StoryText == "" {
			continue
		}
		if len(jobs) >= limit {
			break
		}

		title := hit.Title
		if title == "" {
			title = "Position at " + hit.Author
		}
		company := hit.Author
		if company == "" {
			company = "YC Company"
		}

		body := hit.StoryText
		if body == "" {
			body = hit.CommentText
		}
		description := cleanDescription(body)
		if len(description) > 1500 {
			description = description[:1500]
		}

		jobs = append(jobs, model.Job{
			ID:          "hn_" + hit.ObjectID,
			Title:       title,
			Company:     company,
			Location:    "Various",
			Description: description,
			URL:         hnItemURL(hit.ObjectID),
			PostedAt:    parseTime(hit.CreatedAt, "2006-01-02T15:04:05Z", "2006-01-02T15:04:05.000Z"),
			Source:      "HackerNews",
			Category:    "Startup",
		})
	}
	return jobs
}

func (a *HackerNews) normalizeHiringStories(hits []hnHit, keywords string, limit int) []model.Job {
	jobs := make([]model.Job, 0, len(hits))
	for _, hit := range hits {
		title := strings.ToLower(hit.Title)
		if !strings.Contains(title, "hiring") && !strings.Contains(title, "job") &&
			!strings.Contains(title, "looking for") {
			continue
		}
		if len(jobs) >= limit {
			break
		}

		company := hit.Author
		if company == "" {
			company = "Company"
		}

		link := hit.URL
		if link == "" {
			link = hnItemURL(hit.ObjectID)
		}

		jobs = append(jobs, model.Job{
			ID:          "hnstory_" + hit.ObjectID,
			Title:       hit.Title,
			Company:     company,
			Location:    "Remote/Various",
			Description: hit.Title,
			URL:         link,
			PostedAt:    parseTime(hit.CreatedAt, "2006-01-02T15:04:05Z", "2006-01-02T15:04:05.000Z"),
			Source:      "HN-Hiring",
			Category:    "Tech",
		})
	}
	return jobs
}

func (a *HackerNews) normalizeHiringPosts(hits []hnHit, keywords string, limit int) []model.Job {
	tokens := strings.Fields(strings.ToLower(keywords))

	jobs := make([]model.Job, 0, len(hits))
	for _, hit := range hits {
		text := hit.Title
		if text == "" {
			text = hit.CommentText
		}
		lower := strings.ToLower(text)

		if !strings.Contains(lower, "hiring") && !strings.Contains(lower, "job") &&
			!strings.Contains(lower, "remote") {
			continue
		}
		tokenHit := false
		for _, tok := range tokens {
			if strings.Contains(lower, tok) {
				tokenHit = true
				break
			}
		}
		if !tokenHit {
			continue
		}
		if len(jobs) >= limit {
			break
		}

		title := hit.Title
		if title == "" {
			title = "Hiring: " + keywords
		}
		company := hit.Author
		if company == "" {
			company = "Company"
		}

		body := hit.CommentText
		if body == "" {
			body = hit.StoryText
		}
		if body == "" {
			body = hit.Title
		}

		link := hit.URL
		if link == "" {
			link = hnItemURL(hit.ObjectID)
		}

		jobs = append(jobs, model.Job{
			ID:          "hnhiring_" + hit.ObjectID,
			Title:       title,
			Company:     company,
			Location:    "Remote/Various",
			Description: cleanDescription(body),
			URL:         link,
			PostedAt:    parseTime(hit.CreatedAt, "2006-01-02T15:04:05Z", "2006-01-02T15:04:05.000Z"),
			Source:      "HN-Hiring",
			Category:    "Tech",
		})
	}
	return jobs
}

func hnItemURL(objectID string) string {
	return "https://news.ycombinator.com/item?id=" + objectID
}
