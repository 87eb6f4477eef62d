package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "podcast-index-mcp",
	Short: "Podcast Index tool server",
	Long: `Podcast Index MCP - exposes the Podcast Index API to tool-calling agents.

The server wraps the authenticated Podcast Index search API behind a small
set of typed tools: podcast search (by term, by title), episode search
(by person), and feed/episode lookups by ID.

Credentials are read once at startup from the API_KEY and API_SECRET
environment variables; a missing credential is a fatal configuration error.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}
