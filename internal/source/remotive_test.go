package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const remotivePayload = `{
	"jobs": [
		{
			"id": 101,
			"title": "Senior Go Developer",
			"company_name": "Acme",
			"candidate_required_location": "USA Only",
			"description": "<p>Build backend services in Go.</p>",
			"url": "https://remotive.com/jobs/101",
			"salary": "$120k - $150k",
			"publication_date": "2026-08-20T09:30:00",
			"category": "Software Development"
		},
		{
			"id": 102,
			"title": "Data Analyst",
			"company_name": "Globex",
			"candidate_required_location": "",
			"description": "Dashboards and reporting.",
			"url": "https://remotive.com/jobs/102",
			"salary": "",
			"publication_date": "",
			"category": "Data"
		}
	]
}`

func TestRemotive_Search(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(remotivePayload))
	}))
	defer srv.Close()

	a := NewRemotive(srv.Client(), false)
	a.baseURL = srv.URL

	jobs, err := a.Fetch(context.Background(), "go developer", 150)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if gotQuery != "limit=150&search=go+developer" {
		t.Errorf("unexpected query: %s", gotQuery)
	}

	j := jobs[0]
	if j.ID != "remotive_101" {
		t.Errorf("expected ID remotive_101, got %s", j.ID)
	}
	if j.Title != "Senior Go Developer" {
		t.Errorf("unexpected title %q", j.Title)
	}
	if j.Description != "Build backend services in Go." {
		t.Errorf("expected stripped description, got %q", j.Description)
	}
	if j.Source != "Remotive" {
		t.Errorf("expected source Remotive, got %s", j.Source)
	}
	if j.PostedAt == nil || j.PostedAt.Day() != 20 {
		t.Errorf("unexpected PostedAt: %v", j.PostedAt)
	}

	// Missing location and date fall back safely.
	if jobs[1].Location != "Worldwide" {
		t.Errorf("expected Worldwide fallback, got %s", jobs[1].Location)
	}
	if jobs[1].PostedAt != nil {
		t.Errorf("expected nil PostedAt for blank date, got %v", jobs[1].PostedAt)
	}
}

func TestRemotive_BrowseFiltersLocally(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(remotivePayload))
	}))
	defer srv.Close()

	a := NewRemotive(srv.Client(), true)
	a.baseURL = srv.URL

	jobs, err := a.Fetch(context.Background(), "golang", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Browse mode pulls the whole board, not the user query.
	if gotQuery != "limit=200" {
		t.Errorf("unexpected query: %s", gotQuery)
	}
	if len(jobs) != 0 {
		t.Fatalf("expected local filter to drop non-matching jobs, got %d", len(jobs))
	}

	jobs, err = a.Fetch(context.Background(), "data", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 matching job, got %d", len(jobs))
	}
	if jobs[0].ID != "remotive_extra_102" {
		t.Errorf("expected browse ID prefix, got %s", jobs[0].ID)
	}
}

func TestRemotive_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	a := NewRemotive(srv.Client(), false)
	a.baseURL = srv.URL

	if _, err := a.Fetch(context.Background(), "go", 10); err == nil {
		t.Fatal("expected error for HTTP 429, got nil")
	}
}
