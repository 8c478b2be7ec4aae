package attachments

import (
	"sort"
	"time"
)

// SortNewestFirst stable-sorts records descending by upload time. Records
// whose timestamp is empty or unparseable sort as the oldest possible value,
// so they end up after every record with a valid timestamp; ties keep their
// extraction order.
func SortNewestFirst(records []FileRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return parseUploadTime(records[i].UploadedAt).After(parseUploadTime(records[j].UploadedAt))
	})
}

// parseUploadTime parses an ISO 8601 timestamp as Discord emits them.
// RFC 3339 parsing accepts fractional and whole-second forms and both the
// "Z" marker and a numeric UTC offset through the same path. Anything
// unparseable becomes the zero time.
func parseUploadTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
