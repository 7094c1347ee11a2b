package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jobradar/jobradar/internal/engine"
	"github.com/jobradar/jobradar/internal/model"
)

var (
	searchLimit      int
	searchDateFilter string
	searchSortBy     string
	searchCompany    string
	searchMinScore   float64
	searchSuggest    bool
	searchJSON       bool
)

var searchCmd = &cobra.Command{
	Use:   "search <keywords>",
	Short: "Search all job boards and rank results",
	Long:  "Aggregates listings from every source, deduplicates, ranks them against the keywords, and prints the results.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 100, "maximum number of results")
	searchCmd.Flags().StringVar(&searchDateFilter, "date-filter", "all", "recency window: all, 24h, 3d, 7d, 14d, 30d")
	searchCmd.Flags().StringVar(&searchSortBy, "sort", "relevance", "sort order: relevance, date, company")
	searchCmd.Flags().StringVar(&searchCompany, "company", "", "keep only companies matching any of these comma-separated substrings")
	searchCmd.Flags().Float64Var(&searchMinScore, "min-score", 0, "drop jobs scoring below this")
	searchCmd.Flags().BoolVar(&searchSuggest, "suggest", false, "print keyword refinement suggestions")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "emit results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	keywords := strings.Join(args, " ")
	eng := buildEngine(cfg, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	jobs, err := eng.AggregateJobs(ctx, keywords, engine.SearchOptions{
		Limit:      searchLimit,
		DateFilter: searchDateFilter,
	})
	if err != nil {
		return err
	}

	ranked := eng.RankJobs(jobs, keywords)
	ranked = applyResultFilters(ranked, searchCompany, searchMinScore)
	sortResults(ranked, searchSortBy)

	var suggestions []string
	if searchSuggest {
		suggestions = eng.SuggestKeywords(ranked, 5)
	}

	if searchJSON {
		return printJSON(ranked, keywords, suggestions)
	}

	printResults(ranked, keywords, suggestions)
	return nil
}

// applyResultFilters trims the ranked set by company substring and minimum
// relevance score.
func applyResultFilters(jobs []model.Job, companies string, minScore float64) []model.Job {
	if companies == "" && minScore <= 0 {
		return jobs
	}

	var wanted []string
	for _, c := range strings.Split(companies, ",") {
		if c = strings.TrimSpace(strings.ToLower(c)); c != "" {
			wanted = append(wanted, c)
		}
	}

	kept := make([]model.Job, 0, len(jobs))
	for _, job := range jobs {
		if job.RelevanceScore < minScore {
			continue
		}
		if len(wanted) > 0 {
			company := strings.ToLower(job.Company)
			matched := false
			for _, w := range wanted {
				if strings.Contains(company, w) {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		kept = append(kept, job)
	}
	return kept
}

// sortResults re-sorts the ranked set on demand. "relevance" keeps the
// ranker's order.
func sortResults(jobs []model.Job, sortBy string) {
	switch sortBy {
	case "date":
		sort.SliceStable(jobs, func(i, j int) bool {
			ti, tj := jobs[i].PostedAt, jobs[j].PostedAt
			switch {
			case ti == nil:
				return false
			case tj == nil:
				return true
			default:
				return ti.After(*tj)
			}
		})
	case "company":
		sort.SliceStable(jobs, func(i, j int) bool {
			return strings.ToLower(jobs[i].Company) < strings.ToLower(jobs[j].Company)
		})
	}
}

var (
	resultTitleStyle = lipgloss.NewStyle().
				Bold(true)

	resultMetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	resultScoreStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))

	resultSkillStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("30"))

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)
)

func printResults(jobs []model.Job, keywords string, suggestions []string) {
	if len(jobs) == 0 {
		fmt.Printf("No jobs found for %q.\n", keywords)
		return
	}

	for _, job := range jobs {
		fmt.Println(resultTitleStyle.Render(job.Title) + "  " +
			resultScoreStyle.Render(fmt.Sprintf("%.2f", job.RelevanceScore)))

		meta := job.Company + " · " + job.Location + " · " + job.Source
		if job.PostedAt != nil {
			meta += " · " + job.PostedAt.Format("2006-01-02")
		}
		if job.Salary != "" {
			meta += " · " + job.Salary
		}
		fmt.Println(resultMetaStyle.Render(meta))

		if len(job.Skills) > 0 {
			fmt.Println(resultSkillStyle.Render(strings.Join(job.Skills, ", ")))
		}
		fmt.Println(resultMetaStyle.Render(job.URL))
		fmt.Println()
	}

	summary := fmt.Sprintf("%d jobs for %q", len(jobs), keywords)
	if len(suggestions) > 0 {
		summary += " · try also: " + strings.Join(suggestions, ", ")
	}
	fmt.Println(summaryStyle.Render(summary))
}

func printJSON(jobs []model.Job, keywords string, suggestions []string) error {
	payload := struct {
		TotalJobs         int         `json:"totalJobs"`
		Keywords          string      `json:"keywords"`
		SuggestedKeywords []string    `json:"suggestedKeywords,omitempty"`
		Jobs              []model.Job `json:"jobs"`
	}{
		TotalJobs:         len(jobs),
		Keywords:          keywords,
		SuggestedKeywords: suggestions,
		Jobs:              jobs,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
