package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// EventLine builds one JSONL audit log line
func EventLine(t *testing.T, eventType, ts, sessionID string, data map[string]interface{}) string {
	t.Helper()
	record := map[string]interface{}{
		"type":       eventType,
		"ts":         ts,
		"session_id": sessionID,
	}
	if data != nil {
		record["data"] = data
	}
	line, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("Failed to marshal event line: %v", err)
	}
	return string(line)
}

// WriteSessionFile writes a session fixture file from raw JSONL lines
func WriteSessionFile(t *testing.T, dir, name string, lines []string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write session fixture %s: %v", name, err)
	}
	return path
}

// CreateSessionFixture writes a complete well-formed session file with one
// user input and one tool round-trip
func CreateSessionFixture(t *testing.T, dir, sessionID string) string {
	t.Helper()
	lines := []string{
		EventLine(t, "session_start", "2024-03-01T10:00:00Z", sessionID, map[string]interface{}{
			"model_id":    "claude-3-sonnet",
			"interactive": true,
		}),
		EventLine(t, "user_input", "2024-03-01T10:00:05Z", sessionID, map[string]interface{}{
			"input": "list my buckets",
		}),
		EventLine(t, "tool_execute_start", "2024-03-01T10:00:06Z", sessionID, map[string]interface{}{
			"tool_name": "use_aws",
		}),
		EventLine(t, "tool_execute_end", "2024-03-01T10:00:07Z", sessionID, map[string]interface{}{
			"status":      "success",
			"output":      "3 buckets",
			"duration_ms": 870,
		}),
		EventLine(t, "session_end", "2024-03-01T10:01:00Z", sessionID, nil),
	}
	return WriteSessionFile(t, dir, "session-"+sessionID+".jsonl", lines)
}

// SetModTime sets a fixture file's modification time, for recency sorting
func SetModTime(t *testing.T, path string, mtime time.Time) {
	t.Helper()
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("Failed to set mtime on %s: %v", path, err)
	}
}
