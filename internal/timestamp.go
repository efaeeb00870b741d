package internal

import (
	"strings"
	"time"
)

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// FormatTimestamp renders an ISO-8601 timestamp as "YYYY-MM-DD HH:MM:SS".
// A trailing Z is treated as +00:00; the rendered value keeps the parsed
// offset, no timezone conversion happens. Anything unparseable comes back
// unchanged, so formatting never fails the caller.
func FormatTimestamp(ts string) string {
	s := ts
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02 15:04:05")
		}
	}
	return ts
}
