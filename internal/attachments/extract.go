package attachments

import (
	"github.com/anshuverma-design/Discord-File-Host/internal/discord"
)

const (
	// UnknownAuthor is used when a message carries no recognizable author name.
	UnknownAuthor = "Unknown"

	// UnknownName is used when an attachment carries no filename.
	UnknownName = "unknown"
)

// Extract flattens messages into file records. Messages without attachments
// contribute nothing. Message order and in-message attachment order are
// preserved. The result is never nil, so an empty input still serializes
// as an empty JSON array.
func Extract(messages []discord.Message) []FileRecord {
	records := make([]FileRecord, 0)

	for _, msg := range messages {
		if len(msg.Attachments) == 0 {
			continue
		}

		author := authorName(msg.Author)

		for _, att := range msg.Attachments {
			name := att.Filename
			if name == "" {
				name = UnknownName
			}
			records = append(records, FileRecord{
				Name:        name,
				URL:         att.URL,
				UploadedAt:  msg.Timestamp,
				Author:      author,
				Size:        att.Size,
				ContentType: att.ContentType,
			})
		}
	}

	return records
}

// authorName resolves a display name: global display name, else username,
// else UnknownAuthor.
func authorName(a discord.Author) string {
	if a.GlobalName != "" {
		return a.GlobalName
	}
	if a.Username != "" {
		return a.Username
	}
	return UnknownAuthor
}
