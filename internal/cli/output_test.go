package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestOutput_Table(t *testing.T) {
	var data, msgs bytes.Buffer
	out := &Output{w: &data, errW: &msgs}

	out.Print(
		[]string{"ID", "STATUS"},
		[][]string{{"j-1", "Completed"}, {"j-2", "Running"}},
		nil,
	)

	text := data.String()
	if !strings.Contains(text, "ID") || !strings.Contains(text, "STATUS") {
		t.Errorf("expected headers in output, got %q", text)
	}
	if !strings.Contains(text, "j-1") || !strings.Contains(text, "Completed") {
		t.Errorf("expected rows in output, got %q", text)
	}
	if msgs.Len() != 0 {
		t.Errorf("table output must not write to stderr, got %q", msgs.String())
	}
}

func TestOutput_JSONMode(t *testing.T) {
	var data bytes.Buffer
	out := &Output{jsonMode: true, w: &data, errW: &bytes.Buffer{}}

	payload := map[string]string{"id": "j-1"}
	out.Print([]string{"ID"}, [][]string{{"j-1"}}, payload)

	var decoded map[string]string
	if err := json.Unmarshal(data.Bytes(), &decoded); err != nil {
		t.Fatalf("expected valid JSON, got %q: %v", data.String(), err)
	}
	if decoded["id"] != "j-1" {
		t.Errorf("unexpected JSON payload %v", decoded)
	}
}

func TestOutput_MessagesGoToStderr(t *testing.T) {
	var data, msgs bytes.Buffer
	out := &Output{w: &data, errW: &msgs}

	out.Success("done")
	out.Error("boom")

	if data.Len() != 0 {
		t.Errorf("messages must not write to stdout, got %q", data.String())
	}
	if !strings.Contains(msgs.String(), "done") {
		t.Errorf("expected success message, got %q", msgs.String())
	}
	if !strings.Contains(msgs.String(), "Error: boom") {
		t.Errorf("expected error message, got %q", msgs.String())
	}
}
