package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dimipash/portfolio-api/internal/infra/github"
	"github.com/dimipash/portfolio-api/internal/observability/logging"
	feedUC "github.com/dimipash/portfolio-api/internal/usecase/feed"
)

var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "List the most recently updated public repositories",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, account, limit, err := buildFeedService(cmd)
		if err != nil {
			return err
		}

		repos, err := svc.Latest(context.Background(), account, limit)
		if err != nil {
			return fmt.Errorf("fetch feed: %w", err)
		}

		jsonData, err := json.MarshalIndent(repos, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal results: %w", err)
		}
		fmt.Println(string(jsonData))
		return nil
	},
}

// buildFeedService wires a feed service from the persistent flags.
// The token comes from GITHUB_TOKEN; absence means unauthenticated calls.
func buildFeedService(cmd *cobra.Command) (*feedUC.Service, string, int, error) {
	account, _ := cmd.Flags().GetString("account")
	limit, _ := cmd.Flags().GetInt("limit")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client, err := github.NewClient(github.Config{
		Token:   os.Getenv("GITHUB_TOKEN"),
		Timeout: timeout,
	})
	if err != nil {
		return nil, "", 0, fmt.Errorf("create github client: %w", err)
	}

	return feedUC.NewService(client, logging.NewTextLogger()), account, limit, nil
}

func init() {
	rootCmd.AddCommand(reposCmd)
}
