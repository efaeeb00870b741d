package internal

import "testing"

func TestSummarize_EmptyEvents(t *testing.T) {
	if got := Summarize("/audit/session-x.jsonl", nil); got != nil {
		t.Errorf("Summarize() = %+v for empty events, want nil", got)
	}
}

func TestSummarize(t *testing.T) {
	events := []Event{
		makeEvent(t, EventSessionStart, "2024-03-01T10:00:00Z", "sess-9", map[string]interface{}{
			"model_id":    "claude-3-haiku",
			"interactive": true,
		}),
		makeEvent(t, EventUserInput, "2024-03-01T10:00:01Z", "sess-9", map[string]interface{}{
			"input": "hello",
		}),
		makeEvent(t, EventToolStart, "2024-03-01T10:00:02Z", "sess-9", map[string]interface{}{
			"tool_name":  "use_aws",
			"mcp_server": "aws-tools",
		}),
		makeEvent(t, EventToolStart, "2024-03-01T10:00:03Z", "sess-9", map[string]interface{}{
			"tool_name": "fs_read",
		}),
		makeEvent(t, EventSessionEnd, "2024-03-01T10:05:00Z", "sess-9", nil),
	}

	session := Summarize("/audit/session-sess-9.jsonl", events)
	if session == nil {
		t.Fatal("Summarize() = nil, want session")
	}

	if session.ID != "sess-9" {
		t.Errorf("ID = %s, want sess-9", session.ID)
	}
	if session.File != "session-sess-9.jsonl" {
		t.Errorf("File = %s, want session-sess-9.jsonl", session.File)
	}
	if session.ModelID != "claude-3-haiku" {
		t.Errorf("ModelID = %s, want claude-3-haiku", session.ModelID)
	}
	if !session.Interactive {
		t.Error("Interactive = false, want true")
	}
	if session.StartedAt != "2024-03-01T10:00:00Z" {
		t.Errorf("StartedAt = %s, want 2024-03-01T10:00:00Z", session.StartedAt)
	}
	if session.EndedAt != "2024-03-01T10:05:00Z" {
		t.Errorf("EndedAt = %s, want 2024-03-01T10:05:00Z", session.EndedAt)
	}
	if session.UserInputs != 1 {
		t.Errorf("UserInputs = %d, want 1", session.UserInputs)
	}
	if session.ToolCount != 2 {
		t.Errorf("ToolCount = %d, want 2", session.ToolCount)
	}
	if session.MCPToolCount != 1 {
		t.Errorf("MCPToolCount = %d, want 1", session.MCPToolCount)
	}
	if len(session.Events) != 5 {
		t.Errorf("len(Events) = %d, want 5", len(session.Events))
	}
	if session.Events[1].Data["input"] != "hello" {
		t.Errorf("Events[1].Data[input] = %v, want hello", session.Events[1].Data["input"])
	}
}

func TestSummarize_MissingStartEventKeepsZeroValues(t *testing.T) {
	events := []Event{
		makeEvent(t, EventUserInput, "2024-03-01T10:00:01Z", "sess-n", map[string]interface{}{
			"input": "hi",
		}),
	}

	session := Summarize("/audit/session-sess-n.jsonl", events)
	if session == nil {
		t.Fatal("Summarize() = nil, want session")
	}
	if session.ModelID != "" {
		t.Errorf("ModelID = %s, want empty without session_start", session.ModelID)
	}
	if session.StartedAt != "" {
		t.Errorf("StartedAt = %s, want empty", session.StartedAt)
	}
}
