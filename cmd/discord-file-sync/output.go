package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputHuman writes a human-readable string to stdout.
func outputHuman(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// SyncResult is the JSON output for a successful sync.
type SyncResult struct {
	Status      string `json:"status"`
	ChannelID   string `json:"channel_id"`
	Messages    int    `json:"messages_fetched"`
	Attachments int    `json:"attachments_extracted"`
	Output      string `json:"output"`
}

// SyncErrorResult is the JSON output for sync errors.
type SyncErrorResult struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// outputSyncError reports a fatal condition in the selected output format
// and exits non-zero. Nothing has been written to the output file by the
// time any of these fire.
func outputSyncError(exitCode int, errorCode, message string) error {
	suggestion := suggestionFor(errorCode)

	if humanOutput {
		fmt.Fprintf(os.Stderr, "Error: %s\n", message)
		if suggestion != "" {
			fmt.Fprintf(os.Stderr, "Suggestion: %s\n", suggestion)
		}
	} else {
		enc := json.NewEncoder(os.Stderr)
		enc.SetIndent("", "  ")
		enc.Encode(SyncErrorResult{Error: errorCode, Message: message, Suggestion: suggestion})
	}

	os.Exit(exitCode)
	return nil
}

// suggestionFor maps an error code to a next-step hint for the operator.
func suggestionFor(errorCode string) string {
	switch errorCode {
	case "missing_config":
		return "Set DISCORD_BOT_TOKEN and DISCORD_CHANNEL_ID in the environment or a .env file"
	case "invalid_token":
		return "Check that DISCORD_BOT_TOKEN holds a valid bot token"
	case "missing_access":
		return "Give the bot the View Channel and Read Message History permissions on this channel"
	case "channel_not_found":
		return "Check that DISCORD_CHANNEL_ID is the numeric ID of an existing channel"
	}
	return ""
}
