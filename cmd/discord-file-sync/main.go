// Package main provides the discord-file-sync CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/anshuverma-design/Discord-File-Host/internal/discord"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

var (
	syncLimit  int
	syncOutput string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "discord-file-sync",
	Short: "Publish a Discord channel's file attachments as JSON",
	Long: `discord-file-sync fetches the most recent page of messages from a
Discord channel over the REST API, flattens their file attachments into
records, and writes them newest-first to docs/files.json for a static
site to serve.

It is a run-to-completion batch job intended for cron or GitHub Actions:
no gateway connection, no long-running process, no state between runs
beyond the output file it overwrites. Configuration comes from the
DISCORD_BOT_TOKEN and DISCORD_CHANNEL_ID environment variables (a .env
file is honored), so running the binary with no arguments performs a
full sync.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSync,
}

func init() {
	// Load .env file if present (for DISCORD_BOT_TOKEN / DISCORD_CHANNEL_ID)
	_ = godotenv.Load()

	rootCmd.Version = Version
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Flags().IntVar(&syncLimit, "limit", discord.MaxPageSize, "Maximum messages to fetch (the API caps this at 100)")
	rootCmd.Flags().StringVar(&syncOutput, "output", "", "Output file path (default docs/files.json next to the executable)")
}
