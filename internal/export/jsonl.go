package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/qaudit/qaudit/internal"
)

// JSONLExporter exports sessions in JSONL format (one event per line)
type JSONLExporter struct{}

// Export exports a session to JSONL format
func (e *JSONLExporter) Export(session *internal.Session, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, event := range session.Events {
		obj := map[string]interface{}{
			"type":       event.Type,
			"ts":         event.TS,
			"session_id": session.ID,
		}
		if event.Data != nil {
			obj["data"] = event.Data
		}

		// Encode to single line
		if err := enc.Encode(obj); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
