package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const jobicyPayload = `{
	"jobs": [
		{
			"id": 77,
			"jobTitle": "Go Backend Engineer",
			"companyName": "Stripe",
			"jobGeo": "USA",
			"jobDescription": "Payments infra in Go.",
			"jobIndustry": "Engineering",
			"url": "https://jobicy.com/jobs/77",
			"annualSalaryMin": 150000,
			"annualSalaryMax": 200000,
			"pubDate": "2026-08-12 10:30:00"
		},
		{
			"id": 78,
			"jobTitle": "Content Writer",
			"companyName": "BlogCo",
			"jobGeo": "",
			"jobDescription": "Write articles.",
			"jobIndustry": "Marketing",
			"url": "https://jobicy.com/jobs/78",
			"annualSalaryMin": 0,
			"annualSalaryMax": 0,
			"pubDate": ""
		}
	]
}`

func TestJobicy_TagSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("tag"); got != "go" {
			t.Errorf("expected tag=go, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(jobicyPayload))
	}))
	defer srv.Close()

	a := NewJobicy(srv.Client(), false)
	a.baseURL = srv.URL

	jobs, err := a.Fetch(context.Background(), "go", 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}

	j := jobs[0]
	if j.ID != "jobicy_77" {
		t.Errorf("unexpected ID %s", j.ID)
	}
	if j.Salary != "$150000 - $200000/yr" {
		t.Errorf("unexpected salary %q", j.Salary)
	}
	if j.PostedAt == nil || j.PostedAt.Day() != 12 {
		t.Errorf("unexpected PostedAt: %v", j.PostedAt)
	}

	if jobs[1].Location != "Remote" {
		t.Errorf("expected Remote fallback, got %s", jobs[1].Location)
	}
}

func TestJobicy_BrowseFiltersLocally(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("count") != "100" {
			t.Errorf("expected count=100 in browse mode, got %q", q.Get("count"))
		}
		if q.Has("tag") {
			t.Error("browse mode must not send a tag")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(jobicyPayload))
	}))
	defer srv.Close()

	a := NewJobicy(srv.Client(), true)
	a.baseURL = srv.URL

	jobs, err := a.Fetch(context.Background(), "payments", 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 matching job, got %d", len(jobs))
	}
	if jobs[0].ID != "jobicy_extra_77" {
		t.Errorf("unexpected ID %s", jobs[0].ID)
	}
	if jobs[0].Source != "Jobicy-Extra" {
		t.Errorf("unexpected source %s", jobs[0].Source)
	}
}
