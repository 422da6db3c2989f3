// feedctl is a small CLI for inspecting the GitHub activity feed from the
// terminal, using the same fetch path as the API server.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "feedctl",
	Short: "Inspect the portfolio GitHub activity feed",
	Long: `feedctl fetches the most recently updated public repositories for a
GitHub account, the same way the portfolio API does. Useful for checking
what the feed endpoint will serve without running the server.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("account", "a", "dimipash", "GitHub account to list")
	rootCmd.PersistentFlags().IntP("limit", "n", 5, "Maximum number of repositories")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Request timeout (default 10s)")
}
