package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var clearCacheCmd = &cobra.Command{
	Use:   "clear-cache",
	Short: "Evict all cached fetch results",
	Long:  "Flushes the fetch cache so the next search hits every upstream source fresh. Only meaningful with a persistent (sqlite) cache.",
	RunE:  runClearCache,
}

func init() {
	rootCmd.AddCommand(clearCacheCmd)
}

func runClearCache(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	cache := buildCache(cfg, logger)
	cache.Clear()
	fmt.Println("Fetch cache cleared.")
	return nil
}
