package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jobradar/jobradar/internal/aggregate"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List registered job sources",
	RunE:  runSources,
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

func runSources(cmd *cobra.Command, args []string) error {
	logger := quietLogger()

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	eng := buildEngine(cfg, logger)

	fmt.Println("Sources:")
	for _, name := range eng.Sources() {
		fmt.Println("  " + name)
	}
	fmt.Println("\nDate filters: " + strings.Join(aggregate.Windows, ", "))
	return nil
}
