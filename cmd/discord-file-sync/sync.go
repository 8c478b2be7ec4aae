package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/anshuverma-design/Discord-File-Host/internal/attachments"
	"github.com/anshuverma-design/Discord-File-Host/internal/config"
	"github.com/anshuverma-design/Discord-File-Host/internal/discord"
	"github.com/anshuverma-design/Discord-File-Host/internal/storage"
	"github.com/spf13/cobra"
)

// runSync executes the whole pipeline once: load credentials, fetch one
// page of messages, extract attachments, sort newest first, write the
// file list. Every fatal condition terminates the run before the output
// file is touched.
func runSync(cmd *cobra.Command, args []string) error {
	creds, err := config.LoadCredentials()
	if err != nil {
		return outputSyncError(ExitError, "missing_config", err.Error())
	}

	outputPath := syncOutput
	if outputPath == "" {
		outputPath, err = config.DefaultOutputPath()
		if err != nil {
			return outputSyncError(ExitError, "output_path", err.Error())
		}
	}

	client := discord.NewClient(creds.Token)

	fmt.Fprintf(os.Stderr, "Fetching up to %d messages from channel %s...\n", syncLimit, creds.ChannelID)
	messages, err := client.FetchMessages(context.Background(), creds.ChannelID, syncLimit)
	if err != nil {
		switch {
		case errors.Is(err, discord.ErrInvalidToken):
			return outputSyncError(ExitError, "invalid_token", err.Error())
		case errors.Is(err, discord.ErrMissingAccess):
			return outputSyncError(ExitError, "missing_access", err.Error())
		case errors.Is(err, discord.ErrChannelNotFound):
			return outputSyncError(ExitError, "channel_not_found", err.Error())
		default:
			return outputSyncError(ExitError, "api_error", err.Error())
		}
	}
	fmt.Fprintf(os.Stderr, "Fetched %d messages\n", len(messages))

	records := attachments.Extract(messages)
	fmt.Fprintf(os.Stderr, "Extracted %d attachments\n", len(records))

	attachments.SortNewestFirst(records)

	if err := storage.WriteFileList(records, outputPath); err != nil {
		return outputSyncError(ExitError, "write_failed", err.Error())
	}
	fmt.Fprintf(os.Stderr, "Wrote %d entries to %s\n", len(records), outputPath)

	if humanOutput {
		outputHuman("Synced %d attachments from %d messages to %s\n", len(records), len(messages), outputPath)
		return nil
	}
	return outputJSON(SyncResult{
		Status:      "ok",
		ChannelID:   creds.ChannelID,
		Messages:    len(messages),
		Attachments: len(records),
		Output:      outputPath,
	})
}
