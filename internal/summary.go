package internal

import "path/filepath"

// Session is the normalized form of one audit session, used by the list and
// export surfaces. The transcript view renders straight from the event
// stream instead.
type Session struct {
	ID           string         `json:"id" yaml:"id"`
	File         string         `json:"file" yaml:"file"`
	ModelID      string         `json:"model_id,omitempty" yaml:"model_id,omitempty"`
	Interactive  bool           `json:"interactive" yaml:"interactive"`
	StartedAt    string         `json:"started_at,omitempty" yaml:"started_at,omitempty"`
	EndedAt      string         `json:"ended_at,omitempty" yaml:"ended_at,omitempty"`
	UserInputs   int            `json:"user_inputs" yaml:"user_inputs"`
	ToolCount    int            `json:"tool_count" yaml:"tool_count"`
	MCPToolCount int            `json:"mcp_tool_count" yaml:"mcp_tool_count"`
	Events       []SessionEvent `json:"events" yaml:"events"`
}

// SessionEvent is an Event with its payload decoded for serialization.
type SessionEvent struct {
	Type string                 `json:"type" yaml:"type"`
	TS   string                 `json:"ts" yaml:"ts"`
	Data map[string]interface{} `json:"data,omitempty" yaml:"data,omitempty"`
}

// Summarize folds a session's event stream into its normalized form. Returns
// nil for an empty stream, mirroring the renderer's skip of empty sessions.
func Summarize(path string, events []Event) *Session {
	if len(events) == 0 {
		return nil
	}

	session := &Session{
		ID:   events[0].SessionID,
		File: filepath.Base(path),
	}

	for i := range events {
		event := &events[i]

		switch event.Type {
		case EventSessionStart:
			data := event.SessionStart()
			session.ModelID = data.ModelIDOrDefault()
			session.Interactive = data.Interactive
			session.StartedAt = event.TS
		case EventSessionEnd:
			session.EndedAt = event.TS
		case EventUserInput:
			session.UserInputs++
		case EventToolStart:
			session.ToolCount++
			if event.ToolStart().MCPServer != "" {
				session.MCPToolCount++
			}
		}

		session.Events = append(session.Events, SessionEvent{
			Type: event.Type,
			TS:   event.TS,
			Data: event.DataMap(),
		})
	}

	return session
}
