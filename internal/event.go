package internal

import "encoding/json"

// Event types emitted by the Amazon Q CLI audit logger.
const (
	EventSessionStart = "session_start"
	EventSessionEnd   = "session_end"
	EventUserInput    = "user_input"
	EventToolStart    = "tool_execute_start"
	EventToolEnd      = "tool_execute_end"
)

// StatusSuccess is the status value a tool_execute_end event carries when the
// tool ran cleanly. Anything else is rendered as a failure.
const StatusSuccess = "success"

// Event represents a single entry in a session's JSONL audit stream. The
// shape of Data depends on Type, so it stays raw until a typed accessor
// decodes it.
type Event struct {
	Type      string          `json:"type"`
	TS        string          `json:"ts"`
	SessionID string          `json:"session_id"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// SessionStartData is the payload of a session_start event.
type SessionStartData struct {
	ModelID     *string `json:"model_id"`
	Interactive bool    `json:"interactive"`
}

// UserInputData is the payload of a user_input event.
type UserInputData struct {
	Input string `json:"input"`
}

// ToolStartData is the payload of a tool_execute_start event.
type ToolStartData struct {
	ToolName  string `json:"tool_name"`
	MCPServer string `json:"mcp_server,omitempty"`
}

// ToolEndData is the payload of a tool_execute_end event. Output and
// DurationMS are pointers so an absent field can be told apart from an empty
// or zero one.
type ToolEndData struct {
	Status     string   `json:"status"`
	Output     *string  `json:"output,omitempty"`
	DurationMS *float64 `json:"duration_ms,omitempty"`
}

// SessionStart decodes the event payload as session_start data. A missing or
// undecodable payload yields the defaults: model "Unknown", non-interactive.
func (e *Event) SessionStart() SessionStartData {
	var data SessionStartData
	_ = json.Unmarshal(e.Data, &data)
	return data
}

// ModelIDOrDefault returns the model id, or "Unknown" when the logger did not
// record one.
func (d SessionStartData) ModelIDOrDefault() string {
	if d.ModelID == nil {
		return "Unknown"
	}
	return *d.ModelID
}

// UserInput decodes the event payload as user_input data.
func (e *Event) UserInput() UserInputData {
	var data UserInputData
	_ = json.Unmarshal(e.Data, &data)
	return data
}

// ToolStart decodes the event payload as tool_execute_start data.
func (e *Event) ToolStart() ToolStartData {
	var data ToolStartData
	_ = json.Unmarshal(e.Data, &data)
	return data
}

// ToolEnd decodes the event payload as tool_execute_end data.
func (e *Event) ToolEnd() ToolEndData {
	var data ToolEndData
	_ = json.Unmarshal(e.Data, &data)
	return data
}

// DataMap decodes the raw payload into a generic map for export formats.
// Returns nil when there is no payload or it cannot be decoded.
func (e *Event) DataMap() map[string]interface{} {
	if len(e.Data) == 0 {
		return nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal(e.Data, &m); err != nil {
		return nil
	}
	return m
}
