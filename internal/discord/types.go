package discord

// Message is a message object from the channel messages endpoint.
// Only the fields the sync needs are decoded; everything else is ignored.
type Message struct {
	Author      Author       `json:"author"`
	Timestamp   string       `json:"timestamp"`
	Attachments []Attachment `json:"attachments"`
}

// Author identifies who posted a message.
type Author struct {
	GlobalName string `json:"global_name"`
	Username   string `json:"username"`
}

// Attachment is a file reference embedded in a message.
type Attachment struct {
	Filename    string `json:"filename"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}
