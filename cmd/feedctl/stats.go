package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregate stars and languages over the recent repositories",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, account, limit, err := buildFeedService(cmd)
		if err != nil {
			return err
		}

		stats, err := svc.Stats(context.Background(), account, limit)
		if err != nil {
			return fmt.Errorf("fetch stats: %w", err)
		}

		jsonData, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal results: %w", err)
		}
		fmt.Println(string(jsonData))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
