package main

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jobradar/jobradar/internal/config"
	"github.com/jobradar/jobradar/internal/engine"
	"github.com/jobradar/jobradar/internal/fetchcache"
	"github.com/jobradar/jobradar/internal/source"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "jobradar",
	Short: "Job radar — search remote job boards from one place",
	Long:  "Jobradar aggregates listings from public job boards, ranks them against your keywords, and suggests refinements.",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: JOBRADAR_CONFIG env var or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Optional .env for provider API keys; absence is fine.
	godotenv.Load()
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > JOBRADAR_CONFIG env var > "./config.yaml".
// A missing default file falls back to built-in defaults so the keyless
// sources work out of the box.
func loadConfig(path string) (*config.Config, error) {
	explicit := path != ""
	if path == "" {
		if env := os.Getenv("JOBRADAR_CONFIG"); env != "" {
			path = env
			explicit = true
		} else {
			path = "config.yaml"
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

func setupLogger(dbg bool) *slog.Logger {
	level := slog.LevelInfo
	if dbg {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// buildCache constructs the fetch cache the config asks for: SQLite-backed
// when a path is set (so one-shot CLI runs share it), in-memory otherwise.
func buildCache(cfg *config.Config, logger *slog.Logger) fetchcache.Cache {
	if cfg.Cache.Path != "" {
		cache, err := fetchcache.NewSQLiteCache(cfg.Cache.Path, cfg.Cache.TTL)
		if err == nil {
			return cache
		}
		logger.Warn("falling back to in-memory cache", "path", cfg.Cache.Path, "error", err)
	}
	return fetchcache.NewMemoryCache(cfg.Cache.TTL)
}

// buildEngine wires the full engine from config.
func buildEngine(cfg *config.Config, logger *slog.Logger) *engine.Engine {
	httpClient := &http.Client{Timeout: cfg.FetchTimeout}
	regs := source.Registry(cfg, httpClient)
	cache := buildCache(cfg, logger)
	return engine.New(regs, cache, cfg.FetchTimeout, logger)
}

// quietLogger discards log output. TUI commands use it: anything printed
// before the alt-screen starts corrupts the display.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
