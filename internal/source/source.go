// Package source contains one adapter per upstream job provider. Every
// adapter normalizes its provider's native payload (JSON, RSS, or HTML) into
// the unified Job model behind the model.Fetcher contract. Providers without
// server-side search fetch a bounded page and pre-filter locally.
package source

import (
	"net/http"
	"time"

	"github.com/jobradar/jobradar/internal/config"
	"github.com/jobradar/jobradar/internal/model"
)

// Registration pairs a fetcher with the per-source result limit the
// orchestrator passes to it.
type Registration struct {
	Fetcher model.Fetcher
	Limit   int
}

// Registry builds the full adapter set in its canonical order. The order is
// stable: merged results are concatenated registration-first, and tests rely
// on it.
func Registry(cfg *config.Config, client *http.Client) []Registration {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	regs := []Registration{
		{NewRemotive(client, false), 150},
		{NewRemoteOK(client, false), 150},
		{NewArbeitnow(client, false), 100},
		{NewJobicy(client, false), 50},
		{NewHimalayas(client), 50},
		{NewWeWorkRemotely(client), 100},
		{NewHackerNews(client, HNJobs), 50},
		{NewMuse(client), 50},
		{NewReed(client, cfg.Credentials.ReedAPIKey), 50},
		{NewAdzuna(client, cfg.Credentials.AdzunaAppID, cfg.Credentials.AdzunaAppKey), 50},
		{NewLandingJobs(client), 50},
		{NewJobspresso(client), 30},
		{NewHackerNews(client, HNHiringStories), 30},
		{NewHackerNews(client, HNHiringPosts), 30},
		{NewRemoteOK(client, true), 50},
		{NewJobicy(client, true), 50},
		{NewRemotive(client, true), 100},
		{NewArbeitnow(client, true), 50},
	}

	if len(cfg.Sources.Disabled) == 0 {
		return regs
	}

	disabled := make(map[string]struct{}, len(cfg.Sources.Disabled))
	for _, name := range cfg.Sources.Disabled {
		disabled[name] = struct{}{}
	}

	enabled := regs[:0]
	for _, reg := range regs {
		if _, off := disabled[reg.Fetcher.Name()]; !off {
			enabled = append(enabled, reg)
		}
	}
	return enabled
}
