package export

import (
	"fmt"
	"io"

	"github.com/qaudit/qaudit/internal"
)

// MarkdownExporter exports sessions in Markdown format
type MarkdownExporter struct{}

// Export exports a session to Markdown format
func (e *MarkdownExporter) Export(session *internal.Session, w io.Writer) error {
	// Header
	_, _ = fmt.Fprintf(w, "# Session %s\n\n", session.ID)

	_, _ = fmt.Fprintf(w, "**File:** %s  \n", session.File)
	if session.ModelID != "" {
		_, _ = fmt.Fprintf(w, "**Model:** %s  \n", session.ModelID)
	}
	_, _ = fmt.Fprintf(w, "**Interactive:** %v  \n", session.Interactive)
	if session.StartedAt != "" {
		_, _ = fmt.Fprintf(w, "**Started:** %s  \n", internal.FormatTimestamp(session.StartedAt))
	}
	if session.EndedAt != "" {
		_, _ = fmt.Fprintf(w, "**Ended:** %s  \n", internal.FormatTimestamp(session.EndedAt))
	}
	_, _ = fmt.Fprintf(w, "**Tools:** %d (MCP: %d)\n\n", session.ToolCount, session.MCPToolCount)

	_, _ = fmt.Fprintf(w, "---\n\n")
	_, _ = fmt.Fprintf(w, "## Timeline\n\n")

	for _, event := range session.Events {
		ts := ""
		if event.TS != "" {
			ts = fmt.Sprintf(" (%s)", internal.FormatTimestamp(event.TS))
		}
		_, _ = fmt.Fprintf(w, "**%s**%s\n\n", event.Type, ts)

		switch event.Type {
		case internal.EventUserInput:
			if input, ok := event.Data["input"].(string); ok && input != "" {
				_, _ = fmt.Fprintf(w, "> %s\n\n", input)
			}
		case internal.EventToolStart:
			if name, ok := event.Data["tool_name"].(string); ok {
				_, _ = fmt.Fprintf(w, "- Tool: `%s`\n", name)
			}
			if server, ok := event.Data["mcp_server"].(string); ok && server != "" {
				_, _ = fmt.Fprintf(w, "- Server: `%s`\n", server)
			}
			_, _ = fmt.Fprintln(w)
		case internal.EventToolEnd:
			if status, ok := event.Data["status"].(string); ok {
				_, _ = fmt.Fprintf(w, "- Status: `%s`\n", status)
			}
			if output, ok := event.Data["output"].(string); ok && output != "" {
				_, _ = fmt.Fprintf(w, "- Output:\n\n```\n%s\n```\n", output)
			}
			if duration, ok := event.Data["duration_ms"].(float64); ok {
				_, _ = fmt.Fprintf(w, "- Duration: %vms\n", duration)
			}
			_, _ = fmt.Fprintln(w)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
