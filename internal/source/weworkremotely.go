package source

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jobradar/jobradar/internal/model"
)

const wwrFeedURL = "https://weworkremotely.com/remote-jobs.rss"

// wwrFeed mirrors the WeWorkRemotely RSS 2.0 document.
type wwrFeed struct {
	Channel struct {
		Items []wwrItem `xml:"item"`
	} `xml:"channel"`
}

type wwrItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	PubDate     string `xml:"pubDate"`
	Description string `xml:"description"`
}

// WeWorkRemotely fetches jobs from the WeWorkRemotely RSS feed. Items use a
// "Company: Job Title" title convention which is split heuristically; the
// feed has no search, so keywords are matched locally.
type WeWorkRemotely struct {
	feedURL string
	client  *http.Client
}

// NewWeWorkRemotely creates a WeWorkRemotely adapter.
func NewWeWorkRemotely(client *http.Client) *WeWorkRemotely {
	return &WeWorkRemotely{feedURL: wwrFeedURL, client: client}
}

func (a *WeWorkRemotely) Name() string { return "weworkremotely" }

// Fetch retrieves the RSS feed and normalizes matching items into the
// unified Job model.
func (a *WeWorkRemotely) Fetch(ctx context.Context, keywords string, limit int) ([]model.Job, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("weworkremotely fetch: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/xml, text/xml")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weworkremotely fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &model.HTTPError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("weworkremotely fetch: unexpected status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("weworkremotely fetch: %w", err)
	}

	var feed wwrFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("weworkremotely fetch: parsing feed: %w", err)
	}

	var jobs []model.Job
	for i, item := range feed.Channel.Items {
		if !matchesKeywords(keywords, item.Title, item.Description) {
			continue
		}

		title, company := splitFeedTitle(item.Title)

		link := item.Link
		if link == "" {
			link = item.GUID
		}

		jobs = append(jobs, model.Job{
			ID:          fmt.Sprintf("wwr_%d", i),
			Title:       title,
			Company:     company,
			Location:    "Remote Worldwide",
			Description: cleanDescription(item.Description),
			URL:         link,
			PostedAt:    parseTime(item.PubDate, time.RFC1123Z, time.RFC1123),
			Source:      "WeWorkRemotely",
			Category:    "Remote",
		})
	}

	if len(jobs) > limit {
		jobs = jobs[:limit]
	}
	return jobs, nil
}

// splitFeedTitle splits "Company: Job Title" into its parts. Titles without
// the separator come back untouched with a generic company.
func splitFeedTitle(raw string) (title, company string) {
	company, title, found := strings.Cut(raw, ":")
	if !found {
		return raw, "Company"
	}
	return strings.TrimSpace(title), strings.TrimSpace(company)
}
