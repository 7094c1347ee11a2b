package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jobradar/jobradar/internal/browse"
	"github.com/jobradar/jobradar/internal/engine"
)

var (
	browseLimit      int
	browseDateFilter string
)

var browseCmd = &cobra.Command{
	Use:   "browse <keywords>",
	Short: "Browse ranked results interactively (TUI)",
	Long:  "Runs a search, then opens a split list/detail view over the ranked results.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBrowse,
}

func init() {
	browseCmd.Flags().IntVar(&browseLimit, "limit", 100, "maximum number of results")
	browseCmd.Flags().StringVar(&browseDateFilter, "date-filter", "all", "recency window: all, 24h, 3d, 7d, 14d, 30d")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	// The TUI owns the terminal; log output would corrupt the display.
	logger := quietLogger()

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		setupLogger(debug).Error("failed to load config", "error", err)
		os.Exit(1)
	}

	keywords := strings.Join(args, " ")
	eng := buildEngine(cfg, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	jobs, err := eng.AggregateJobs(ctx, keywords, engine.SearchOptions{
		Limit:      browseLimit,
		DateFilter: browseDateFilter,
	})
	if err != nil {
		return err
	}

	ranked := eng.RankJobs(jobs, keywords)
	return browse.Run(ranked, keywords)
}
