package internal

import (
	"encoding/json"
	"testing"
)

func TestSessionStartData_ModelIDOrDefault(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{
			name: "model id present",
			data: `{"model_id": "claude-3-sonnet"}`,
			want: "claude-3-sonnet",
		},
		{
			name: "model id absent",
			data: `{"interactive": true}`,
			want: "Unknown",
		},
		{
			name: "model id present but empty",
			data: `{"model_id": ""}`,
			want: "",
		},
		{
			name: "no payload",
			data: "",
			want: "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := Event{Type: EventSessionStart}
			if tt.data != "" {
				event.Data = json.RawMessage(tt.data)
			}
			if got := event.SessionStart().ModelIDOrDefault(); got != tt.want {
				t.Errorf("ModelIDOrDefault() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToolEnd_DistinguishesAbsentFromEmpty(t *testing.T) {
	event := Event{
		Type: EventToolEnd,
		Data: json.RawMessage(`{"status": "success", "output": ""}`),
	}
	data := event.ToolEnd()
	if data.Output == nil {
		t.Error("Output = nil for present empty string, want non-nil")
	}
	if data.DurationMS != nil {
		t.Errorf("DurationMS = %v for absent field, want nil", *data.DurationMS)
	}
}

func TestEvent_DataMap(t *testing.T) {
	event := Event{Data: json.RawMessage(`{"tool_name": "use_aws", "duration_ms": 12}`)}
	m := event.DataMap()
	if m["tool_name"] != "use_aws" {
		t.Errorf("DataMap()[tool_name] = %v, want use_aws", m["tool_name"])
	}

	if m := (&Event{}).DataMap(); m != nil {
		t.Errorf("DataMap() = %v for no payload, want nil", m)
	}
	if m := (&Event{Data: json.RawMessage(`[1,2]`)}).DataMap(); m != nil {
		t.Errorf("DataMap() = %v for non-object payload, want nil", m)
	}
}

func TestEvent_UndecodablePayloadYieldsZeroValues(t *testing.T) {
	event := Event{
		Type: EventToolStart,
		Data: json.RawMessage(`"just a string"`),
	}
	if data := event.ToolStart(); data.ToolName != "" || data.MCPServer != "" {
		t.Errorf("ToolStart() = %+v for bad payload, want zero values", data)
	}
}
