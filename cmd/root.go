// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/aokumura/commitlens/internal/config"
	"github.com/aokumura/commitlens/internal/gateway"
	"github.com/aokumura/commitlens/internal/ui"
	"github.com/aokumura/commitlens/internal/usecase"
)

var rootCmd = &cobra.Command{
	Use:   "commitlens",
	Short: "Explore a GitHub user's monthly commit activity.",
	Long: `commitlens looks up a GitHub user, lists their repositories and renders
a month-by-month commit chart for a selected year. Run without a
subcommand to open the interactive terminal UI; use "stats" for
machine-readable JSON output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		aggregator, err := buildAggregator(cmd)
		if err != nil {
			return err
		}
		p := tea.NewProgram(ui.NewModel(aggregator), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("UI error: %w", err)
		}
		return nil
	},
}

// buildAggregator wires config, gateway and logger for a command. The
// warning log sink goes to stderr only under --verbose.
func buildAggregator(cmd *cobra.Command) (*usecase.Aggregator, error) {
	verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")
	logger := log.New(io.Discard, "", log.LstdFlags)
	if verbose {
		logger.SetOutput(os.Stderr)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	githubGateway, err := gateway.NewGitHubGateway(cfg.Token, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub gateway: %w", err)
	}
	return usecase.NewAggregator(githubGateway, logger), nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
}
