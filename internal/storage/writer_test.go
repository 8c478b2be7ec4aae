package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anshuverma-design/Discord-File-Host/internal/attachments"
)

func TestWriteFileListCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs", "files.json")

	err := WriteFileList([]attachments.FileRecord{{Name: "a.txt"}}, path)
	if err != nil {
		t.Fatalf("WriteFileList() error = %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("output file not created: %v", err)
	}
}

func TestWriteFileListEmptyWritesArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "files.json")

	if err := WriteFileList(nil, path); err != nil {
		t.Fatalf("WriteFileList() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if got := strings.TrimSpace(string(data)); got != "[]" {
		t.Errorf("content = %q, want %q", got, "[]")
	}
}

func TestWriteFileListFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "files.json")
	records := []attachments.FileRecord{{
		Name:        "café menu 日本語.pdf",
		URL:         "https://cdn.example/a.pdf?ex=1&is=2",
		UploadedAt:  "2024-06-01T12:00:00Z",
		Author:      "ألис",
		Size:        2048,
		ContentType: "application/pdf",
	}}

	if err := WriteFileList(records, path); err != nil {
		t.Fatalf("WriteFileList() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	content := string(data)

	// Non-ASCII verbatim, no \u escapes for & or multibyte characters
	if !strings.Contains(content, "café menu 日本語.pdf") {
		t.Error("non-ASCII filename was escaped")
	}
	if !strings.Contains(content, "ex=1&is=2") {
		t.Error("& in URL was escaped")
	}

	// 2-space indentation
	if !strings.Contains(content, "\n    \"name\"") {
		t.Error("output is not 2-space indented")
	}

	// Key order follows the record's field declaration order
	keys := []string{"\"name\"", "\"url\"", "\"uploaded_at\"", "\"author\"", "\"size\"", "\"content_type\""}
	last := -1
	for _, key := range keys {
		idx := strings.Index(content, key)
		if idx < 0 {
			t.Fatalf("key %s missing from output", key)
		}
		if idx < last {
			t.Errorf("key %s out of order", key)
		}
		last = idx
	}

	// Round-trips to the same records
	var got []attachments.FileRecord
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(got) != 1 || got[0] != records[0] {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestWriteFileListOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "files.json")

	two := []attachments.FileRecord{{Name: "a.txt"}, {Name: "b.txt"}}
	if err := WriteFileList(two, path); err != nil {
		t.Fatalf("WriteFileList() error = %v", err)
	}

	one := []attachments.FileRecord{{Name: "c.txt"}}
	if err := WriteFileList(one, path); err != nil {
		t.Fatalf("WriteFileList() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	var got []attachments.FileRecord
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(got) != 1 || got[0].Name != "c.txt" {
		t.Errorf("overwrite failed, got %+v", got)
	}
}
