package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const remoteOKPayload = `[
	{"legal": "API terms of service apply."},
	{
		"id": 900,
		"position": "Backend Engineer",
		"company": "Initech",
		"location": "",
		"description": "<b>Go and Postgres</b>",
		"tags": ["golang", "backend", "postgres"],
		"url": "",
		"salary_min": 90000,
		"salary_max": 130000,
		"date": "2026-08-18T00:00:00+00:00"
	},
	{
		"id": "901",
		"position": "Growth Marketer",
		"company": "Hooli",
		"location": "Remote US",
		"description": "Run campaigns",
		"tags": ["marketing"],
		"url": "https://remoteok.com/remote-jobs/901",
		"salary_min": 0,
		"salary_max": 0,
		"date": ""
	}
]`

func TestRemoteOK_BoardMode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != userAgent {
			t.Errorf("expected browser User-Agent, got %q", r.Header.Get("User-Agent"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(remoteOKPayload))
	}))
	defer srv.Close()

	a := NewRemoteOK(srv.Client(), false)
	a.baseURL = srv.URL

	jobs, err := a.Fetch(context.Background(), "golang", 150)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Legal notice and the non-matching marketing job drop out.
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}

	j := jobs[0]
	if j.ID != "remoteok_900" {
		t.Errorf("expected ID remoteok_900, got %s", j.ID)
	}
	if j.Location != "Remote Worldwide" {
		t.Errorf("expected location fallback, got %s", j.Location)
	}
	if j.Salary != "$90000 - $130000/yr" {
		t.Errorf("unexpected salary %q", j.Salary)
	}
	if j.URL != "https://remoteok.com/remote-jobs/900" {
		t.Errorf("expected URL built from ID, got %s", j.URL)
	}
	if j.Category != "golang, backend" {
		t.Errorf("expected first two tags as category, got %q", j.Category)
	}
	if j.PostedAt == nil || j.PostedAt.Day() != 18 {
		t.Errorf("unexpected PostedAt: %v", j.PostedAt)
	}
}

func TestRemoteOK_TagMode(t *testing.T) {
	var gotTags []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTags = append(gotTags, r.URL.Query().Get("tag"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(remoteOKPayload))
	}))
	defer srv.Close()

	a := NewRemoteOK(srv.Client(), true)
	a.baseURL = srv.URL

	jobs, err := a.Fetch(context.Background(), "design", 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gotTags) != 1 || gotTags[0] != "design" {
		t.Fatalf("expected a single design tag probe, got %v", gotTags)
	}
	// Tag mode trusts the server-side tag filter; everything but the legal
	// notice comes back.
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].ID != "remoteok_tag_900" {
		t.Errorf("expected tag ID prefix, got %s", jobs[0].ID)
	}
	if jobs[0].Source != "RemoteOK-Tags" {
		t.Errorf("unexpected source %s", jobs[0].Source)
	}
}

func TestRemoteOK_TagMode_FallbackTag(t *testing.T) {
	var gotTags []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTags = append(gotTags, r.URL.Query().Get("tag"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	a := NewRemoteOK(srv.Client(), true)
	a.baseURL = srv.URL

	if _, err := a.Fetch(context.Background(), "zoologist", 50); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gotTags) != 1 || gotTags[0] != "developer" {
		t.Fatalf("expected developer fallback probe, got %v", gotTags)
	}
}

func TestRemoteOK_TagMode_CapsAtTwoTags(t *testing.T) {
	var gotTags []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTags = append(gotTags, r.URL.Query().Get("tag"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	a := NewRemoteOK(srv.Client(), true)
	a.baseURL = srv.URL

	// "dev" matches developer and devops; "frontend" would be a third.
	if _, err := a.Fetch(context.Background(), "dev frontend", 50); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gotTags) != 2 {
		t.Fatalf("expected exactly 2 tag probes, got %v", gotTags)
	}
}
