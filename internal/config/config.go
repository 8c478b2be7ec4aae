// Package config loads sync credentials and paths from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Environment variables read at startup. Both are required; there are no
// defaults. A .env file is loaded by the CLI before these are read.
const (
	EnvBotToken  = "DISCORD_BOT_TOKEN"
	EnvChannelID = "DISCORD_CHANNEL_ID"
)

// Output file location, relative to the executable by default.
const (
	OutputDir  = "docs"
	OutputFile = "files.json"
)

// Errors for missing configuration.
var (
	ErrMissingToken   = errors.New(EnvBotToken + " environment variable not set")
	ErrMissingChannel = errors.New(EnvChannelID + " environment variable not set")
)

// Credentials holds the bot token and target channel for one sync run.
type Credentials struct {
	Token     string // Bot token sent in the Authorization header
	ChannelID string // Target channel ID
}

// LoadCredentials reads the bot token and channel ID from the environment.
// A missing or empty value is an error naming the exact variable, detected
// before any network activity.
func LoadCredentials() (*Credentials, error) {
	token := os.Getenv(EnvBotToken)
	if token == "" {
		return nil, ErrMissingToken
	}

	channelID := os.Getenv(EnvChannelID)
	if channelID == "" {
		return nil, ErrMissingChannel
	}

	return &Credentials{Token: token, ChannelID: channelID}, nil
}

// DefaultOutputPath returns docs/files.json next to the running executable,
// so a scheduler can invoke the binary from anywhere and the output lands
// in the site checkout alongside it.
func DefaultOutputPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	return OutputPath(filepath.Dir(exe)), nil
}

// OutputPath returns the output file path under the given base directory.
func OutputPath(base string) string {
	return filepath.Join(base, OutputDir, OutputFile)
}
