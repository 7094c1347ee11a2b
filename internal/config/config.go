package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for the jobradar engine.
type Config struct {
	FetchTimeout time.Duration // per-source fetch deadline
	Cache        CacheConfig
	Sources      SourcesConfig
	Credentials  CredentialsConfig
}

// CacheConfig controls the fetch cache.
type CacheConfig struct {
	TTL  time.Duration
	Path string // sqlite file path; empty means in-memory
}

// SourcesConfig controls which adapters are registered.
type SourcesConfig struct {
	Disabled []string `yaml:"disabled"`
}

// CredentialsConfig holds optional provider API keys. An adapter whose key is
// missing returns no results without attempting network I/O; that is an
// expected deployment state, not an error.
type CredentialsConfig struct {
	ReedAPIKey   string `yaml:"reed_api_key"`
	AdzunaAppID  string `yaml:"adzuna_app_id"`
	AdzunaAppKey string `yaml:"adzuna_app_key"`
}

const (
	defaultFetchTimeout = 15 * time.Second
	defaultCacheTTL     = 30 * time.Minute
)

// rawConfig is used for YAML unmarshaling (snake_case fields, durations as strings).
type rawConfig struct {
	FetchTimeout string            `yaml:"fetch_timeout"`
	Cache        rawCacheConfig    `yaml:"cache"`
	Sources      SourcesConfig     `yaml:"sources"`
	Credentials  CredentialsConfig `yaml:"credentials"`
}

type rawCacheConfig struct {
	TTL  string `yaml:"ttl"`
	Path string `yaml:"path"`
}

// Default returns the configuration used when no config file is present.
// Keyless adapters still work; Reed and Adzuna fall back to the usual
// environment variables.
func Default() *Config {
	return &Config{
		FetchTimeout: defaultFetchTimeout,
		Cache:        CacheConfig{TTL: defaultCacheTTL},
		Credentials: CredentialsConfig{
			ReedAPIKey:   os.Getenv("REED_API_KEY"),
			AdzunaAppID:  os.Getenv("ADZUNA_APP_ID"),
			AdzunaAppKey: os.Getenv("ADZUNA_API_KEY"),
		},
	}
}

// Load reads and parses the YAML config file at path, applying defaults for
// anything omitted. Environment variables referenced in the file are expanded
// before parsing, so secrets can stay out of the file itself.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	fetchTimeout := defaultFetchTimeout
	if raw.FetchTimeout != "" {
		fetchTimeout, err = time.ParseDuration(raw.FetchTimeout)
		if err != nil {
			return nil, fmt.Errorf("parse fetch_timeout %q: %w", raw.FetchTimeout, err)
		}
	}

	cacheTTL := defaultCacheTTL
	if raw.Cache.TTL != "" {
		cacheTTL, err = time.ParseDuration(raw.Cache.TTL)
		if err != nil {
			return nil, fmt.Errorf("parse cache.ttl %q: %w", raw.Cache.TTL, err)
		}
	}

	cfg := &Config{
		FetchTimeout: fetchTimeout,
		Cache: CacheConfig{
			TTL:  cacheTTL,
			Path: raw.Cache.Path,
		},
		Sources:     raw.Sources,
		Credentials: raw.Credentials,
	}
	return cfg, nil
}
