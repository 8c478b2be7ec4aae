package config

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadCredentials(t *testing.T) {
	t.Run("both set", func(t *testing.T) {
		t.Setenv(EnvBotToken, "token-abc")
		t.Setenv(EnvChannelID, "123456")

		creds, err := LoadCredentials()
		if err != nil {
			t.Fatalf("LoadCredentials() error = %v", err)
		}
		if creds.Token != "token-abc" {
			t.Errorf("Token = %q, want %q", creds.Token, "token-abc")
		}
		if creds.ChannelID != "123456" {
			t.Errorf("ChannelID = %q, want %q", creds.ChannelID, "123456")
		}
	})

	t.Run("missing token", func(t *testing.T) {
		t.Setenv(EnvBotToken, "")
		t.Setenv(EnvChannelID, "123456")

		_, err := LoadCredentials()
		if !errors.Is(err, ErrMissingToken) {
			t.Fatalf("LoadCredentials() error = %v, want ErrMissingToken", err)
		}
		if !strings.Contains(err.Error(), EnvBotToken) {
			t.Errorf("error %q does not name %s", err, EnvBotToken)
		}
	})

	t.Run("missing channel", func(t *testing.T) {
		t.Setenv(EnvBotToken, "token-abc")
		t.Setenv(EnvChannelID, "")

		_, err := LoadCredentials()
		if !errors.Is(err, ErrMissingChannel) {
			t.Fatalf("LoadCredentials() error = %v, want ErrMissingChannel", err)
		}
		if !strings.Contains(err.Error(), EnvChannelID) {
			t.Errorf("error %q does not name %s", err, EnvChannelID)
		}
	})

	t.Run("token checked before channel", func(t *testing.T) {
		t.Setenv(EnvBotToken, "")
		t.Setenv(EnvChannelID, "")

		_, err := LoadCredentials()
		if !errors.Is(err, ErrMissingToken) {
			t.Errorf("LoadCredentials() error = %v, want ErrMissingToken", err)
		}
	})
}

func TestOutputPath(t *testing.T) {
	got := OutputPath("/srv/site")
	want := filepath.Join("/srv/site", "docs", "files.json")
	if got != want {
		t.Errorf("OutputPath() = %q, want %q", got, want)
	}
}
