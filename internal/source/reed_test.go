package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestReed_NoAPIKey(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	a := NewReed(srv.Client(), "")
	a.baseURL = srv.URL

	jobs, err := a.Fetch(context.Background(), "go", 50)
	if err != nil {
		t.Fatalf("expected nil error without API key, got %v", err)
	}
	if jobs != nil {
		t.Fatalf("expected nil jobs without API key, got %v", jobs)
	}
	if calls != 0 {
		t.Fatalf("expected no network I/O without API key, got %d calls", calls)
	}
}

func TestReed_Fetch(t *testing.T) {
	payload := `{
		"results": [
			{
				"jobId": 555,
				"jobTitle": "Go Developer",
				"employerName": "Initech UK",
				"locationName": "London",
				"jobDescription": "Backend work in Go.",
				"jobUrl": "https://www.reed.co.uk/jobs/555",
				"minimumSalary": 60000,
				"maximumSalary": 80000,
				"date": "15/08/2026"
			},
			{
				"jobId": 556,
				"jobTitle": "Support Engineer",
				"employerName": "Globex",
				"locationName": "",
				"jobDescription": "Helpdesk.",
				"jobUrl": "https://www.reed.co.uk/jobs/556",
				"minimumSalary": 0,
				"maximumSalary": 0,
				"date": ""
			}
		]
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "test-key" || pass != "" {
			t.Errorf("expected API key as basic-auth user, got %q/%q ok=%v", user, pass, ok)
		}
		if got := r.URL.Query().Get("keywords"); got != "go" {
			t.Errorf("expected keywords=go, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	a := NewReed(srv.Client(), "test-key")
	a.baseURL = srv.URL

	jobs, err := a.Fetch(context.Background(), "go", 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}

	j := jobs[0]
	if j.ID != "reed_555" {
		t.Errorf("unexpected ID %s", j.ID)
	}
	if j.Salary != "£60000 - £80000" {
		t.Errorf("unexpected salary %q", j.Salary)
	}
	if j.PostedAt == nil || j.PostedAt.Day() != 15 {
		t.Errorf("unexpected PostedAt: %v", j.PostedAt)
	}

	if jobs[1].Location != "UK" {
		t.Errorf("expected UK location fallback, got %s", jobs[1].Location)
	}
	if jobs[1].Salary != "" {
		t.Errorf("expected empty salary for zero range, got %q", jobs[1].Salary)
	}
}
