package audit

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLoggerWritesJSONLines(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf)
	logger.Log(Event{Tool: "cloud.instances.list", Outcome: "success", DurationMS: 12})
	logger.Log(Event{Tool: "cloud.instances.delete", Outcome: "error", Error: "not found"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	var event Event
	if err := json.Unmarshal([]byte(lines[0]), &event); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if event.Tool != "cloud.instances.list" || event.Outcome != "success" {
		t.Fatalf("unexpected event: %#v", event)
	}
	if event.ID == "" || event.Timestamp.IsZero() {
		t.Fatalf("expected id and timestamp assigned: %#v", event)
	}
}

func TestNilWriterDiscards(t *testing.T) {
	logger := NewLogger(nil)
	logger.Log(Event{Tool: "cloud.instances.list", Outcome: "success"})
}

func TestNilLoggerIsSafe(t *testing.T) {
	var logger *Logger
	logger.Log(Event{Tool: "cloud.instances.list"})
}
