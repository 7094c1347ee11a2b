package source

import (
	"testing"

	"github.com/jobradar/jobradar/internal/config"
)

func TestRegistry_CanonicalOrder(t *testing.T) {
	regs := Registry(config.Default(), nil)

	want := []string{
		"remotive", "remoteok", "arbeitnow", "jobicy", "himalayas",
		"weworkremotely", "hackernews", "themuse", "reed", "adzuna",
		"landingjobs", "jobspresso", "hn-hiring-stories", "hn-hiring-posts",
		"remoteok-tags", "jobicy-browse", "remotive-browse", "arbeitnow-remote",
	}
	if len(regs) != len(want) {
		t.Fatalf("expected %d registrations, got %d", len(want), len(regs))
	}
	for i, name := range want {
		if regs[i].Fetcher.Name() != name {
			t.Errorf("position %d: expected %s, got %s", i, name, regs[i].Fetcher.Name())
		}
		if regs[i].Limit <= 0 {
			t.Errorf("%s: expected a positive limit", name)
		}
	}
}

func TestRegistry_UniqueNames(t *testing.T) {
	regs := Registry(config.Default(), nil)

	seen := make(map[string]struct{}, len(regs))
	for _, reg := range regs {
		name := reg.Fetcher.Name()
		if _, dup := seen[name]; dup {
			t.Errorf("duplicate source name %s; cache keys would collide", name)
		}
		seen[name] = struct{}{}
	}
}

func TestRegistry_DisablesSources(t *testing.T) {
	cfg := config.Default()
	cfg.Sources.Disabled = []string{"reed", "adzuna", "jobspresso"}

	regs := Registry(cfg, nil)

	if len(regs) != 15 {
		t.Fatalf("expected 15 registrations, got %d", len(regs))
	}
	for _, reg := range regs {
		switch reg.Fetcher.Name() {
		case "reed", "adzuna", "jobspresso":
			t.Errorf("disabled source %s still registered", reg.Fetcher.Name())
		}
	}
}
