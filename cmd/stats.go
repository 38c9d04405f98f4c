// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aokumura/commitlens/internal/domain"
)

// statsOutput is the JSON shape printed by the stats subcommand.
type statsOutput struct {
	User         *domain.User          `json:"user"`
	Year         int                   `json:"year"`
	Repositories int                   `json:"repositories"`
	Months       []domain.MonthlyCount `json:"months"`
	Summary      domain.Summary        `json:"summary"`
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregates monthly commit counts and outputs them as JSON",
	Long:  `Counts the commits a GitHub user authored in each month of the given year across their repositories and prints the twelve buckets plus summary values as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		user, _ := cmd.Flags().GetString("user")
		year, _ := cmd.Flags().GetInt("year")
		if year == 0 {
			year = time.Now().Year()
		}

		aggregator, err := buildAggregator(cmd)
		if err != nil {
			return err
		}

		profile, repos, err := aggregator.Lookup(ctx, user)
		if err != nil {
			return fmt.Errorf("failed to look up %s: %w", user, err)
		}

		activity, err := aggregator.Aggregate(ctx, profile.Login, year, repos)
		if err != nil {
			return fmt.Errorf("failed to aggregate commits: %w", err)
		}

		out := statsOutput{
			User:         profile,
			Year:         activity.Year,
			Repositories: len(repos),
			Months:       activity.Months[:],
			Summary:      activity.Summarize(),
		}
		jsonData, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results to JSON: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(jsonData))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringP("user", "u", "", "Target GitHub user name (required)")
	statsCmd.Flags().IntP("year", "y", 0, "Target year (defaults to the current year)")
	statsCmd.MarkFlagRequired("user")
}
