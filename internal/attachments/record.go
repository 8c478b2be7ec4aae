// Package attachments flattens Discord messages into the published file list.
package attachments

// FileRecord is one attachment entry in the published file list.
// Field order here defines the key order in docs/files.json.
type FileRecord struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	UploadedAt  string `json:"uploaded_at"`
	Author      string `json:"author"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}
