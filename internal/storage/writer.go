// Package storage writes the published file list to disk.
package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/anshuverma-design/Discord-File-Host/internal/attachments"
)

// WriteFileList serializes records as a 2-space-indented JSON array at path,
// creating parent directories as needed and overwriting any previous file.
// Non-ASCII characters and URL characters like & are written verbatim, and
// an empty list is written as [], so downstream consumers always see an
// array. The list is encoded in full before the file is touched; a failed
// run leaves the previous output intact.
func WriteFileList(records []attachments.FileRecord, path string) error {
	if records == nil {
		records = []attachments.FileRecord{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding file list: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing file list: %w", err)
	}

	return nil
}
