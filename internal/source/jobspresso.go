package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/jobradar/jobradar/internal/model"
)

const jobspressoBaseURL = "https://jobspresso.co/jm-ajax/get_listings/"

// jobspressoResponse wraps the HTML fragment Jobspresso's listings endpoint
// returns inside a JSON envelope.
type jobspressoResponse struct {
	HTML string `json:"html"`
}

// Jobspresso fetches curated remote jobs from Jobspresso. The endpoint
// answers with rendered HTML rather than structured data, so listings are
// extracted from the markup: one ".job_listing" element per job.
type Jobspresso struct {
	baseURL string
	client  *http.Client
}

// NewJobspresso creates a Jobspresso adapter.
func NewJobspresso(client *http.Client) *Jobspresso {
	return &Jobspresso{baseURL: jobspressoBaseURL, client: client}
}

func (a *Jobspresso) Name() string { return "jobspresso" }

// Fetch retrieves listings from Jobspresso and normalizes them into the
// unified Job model. Markup gives us title, company, and link only; the
// title doubles as the description and dates are unknown.
func (a *Jobspresso) Fetch(ctx context.Context, keywords string, limit int) ([]model.Job, error) {
	params := url.Values{}
	params.Set("search_keywords", keywords)
	params.Set("per_page", fmt.Sprintf("%d", limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("jobspresso fetch: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	var resp jobspressoResponse
	if err := getJSON(req, a.client, &resp); err != nil {
		return nil, fmt.Errorf("jobspresso fetch: %w", err)
	}
	if resp.HTML == "" {
		return nil, nil
	}

	root, err := html.Parse(strings.NewReader(resp.HTML))
	if err != nil {
		return nil, fmt.Errorf("jobspresso fetch: parsing listings markup: %w", err)
	}

	var jobs []model.Job
	for _, listing := range findAllByClass(root, "job_listing") {
		title := nodeText(findFirst(listing, func(n *html.Node) bool {
			return hasClass(n, "job_listing-title") || n.Data == "h3"
		}))
		if title == "" {
			continue
		}

		company := nodeText(findFirst(listing, func(n *html.Node) bool {
			return hasClass(n, "job_listing-company") || hasClass(n, "company")
		}))
		if company == "" {
			company = "Company"
		}

		link := ""
		if anchor := findFirst(listing, func(n *html.Node) bool { return n.Data == "a" }); anchor != nil {
			link = attr(anchor, "href")
		}
		if link == "" {
			link = "https://jobspresso.co"
		}

		jobs = append(jobs, model.Job{
			ID:          fmt.Sprintf("jobspresso_%d", len(jobs)),
			Title:       title,
			Company:     company,
			Location:    "Remote",
			Description: title,
			URL:         link,
			Source:      "Jobspresso",
		})
	}

	return jobs, nil
}

// findAllByClass walks the tree collecting elements carrying the class.
// Nested matches are skipped so one listing yields one result.
func findAllByClass(root *html.Node, class string) []*html.Node {
	var matches []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, class) {
			matches = append(matches, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return matches
}

// findFirst returns the first element node under root (depth-first) matching
// pred, or nil.
func findFirst(root *html.Node, pred func(*html.Node) bool) *html.Node {
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && pred(c) {
			return c
		}
		if found := findFirst(c, pred); found != nil {
			return found
		}
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// nodeText returns the concatenated, whitespace-collapsed text content of n.
func nodeText(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
