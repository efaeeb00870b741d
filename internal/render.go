package internal

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Display truncation limits, in characters.
const (
	maxInputChars  = 100
	maxOutputChars = 200
)

var (
	sessionIDStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	fileNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)
)

// RenderSession prints a transcript of one session's events to w. Events
// must be in emission order; the first event's session id names the whole
// file. An empty event slice produces no output and returns false.
func RenderSession(w io.Writer, path string, events []Event) bool {
	if len(events) == 0 {
		return false
	}

	sessionID := events[0].SessionID

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "📋 Session: %s\n", sessionIDStyle.Render(sessionID))
	_, _ = fmt.Fprintf(w, "📄 File: %s\n", fileNameStyle.Render(filepath.Base(path)))

	toolCount := 0
	mcpToolCount := 0

	for i := range events {
		event := &events[i]
		ts := FormatTimestamp(event.TS)

		switch event.Type {
		case EventSessionStart:
			data := event.SessionStart()
			_, _ = fmt.Fprintf(w, "  ⏰ Started: %s\n", ts)
			_, _ = fmt.Fprintf(w, "  🤖 Model: %s\n", data.ModelIDOrDefault())
			_, _ = fmt.Fprintf(w, "  💬 Interactive: %v\n", data.Interactive)

		case EventUserInput:
			input := Truncate(event.UserInput().Input, maxInputChars)
			_, _ = fmt.Fprintf(w, "  👤 Input: %s\n", input)

		case EventToolStart:
			data := event.ToolStart()
			toolCount++
			if data.MCPServer != "" {
				mcpToolCount++
			}
			_, _ = fmt.Fprintf(w, "  🔧 Started: %s\n", data.ToolName)
			if data.MCPServer != "" {
				_, _ = fmt.Fprintf(w, "      Server: %s\n", data.MCPServer)
			}

		case EventToolEnd:
			renderToolEnd(w, event.ToolEnd())

		case EventSessionEnd:
			_, _ = fmt.Fprintf(w, "  🔚 Ended: %s\n", ts)
		}
	}

	footer := fmt.Sprintf("Total tools: %d (MCP: %d)", toolCount, mcpToolCount)
	_, _ = fmt.Fprintf(w, "  📊 %s\n", summaryStyle.Render(footer))

	return true
}

func renderToolEnd(w io.Writer, data ToolEndData) {
	marker := "❌"
	if data.Status == StatusSuccess {
		marker = "✅"
	}
	_, _ = fmt.Fprintf(w, "  %s Finished: %s\n", marker, data.Status)

	if data.Output != nil {
		_, _ = fmt.Fprintf(w, "      Output: %s\n", Truncate(*data.Output, maxOutputChars))
	}
	if data.DurationMS != nil {
		_, _ = fmt.Fprintf(w, "      Duration: %sms\n", strconv.FormatFloat(*data.DurationMS, 'f', -1, 64))
	}
}

// Truncate shortens s to max characters, appending an ellipsis marker when
// anything was cut. Counting is by rune so multibyte input is not split.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
