package logs_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"logview/internal/logs"
)

func TestResponseOK(t *testing.T) {
	mod := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	result := logs.Result{
		Status:    logs.StatusOK,
		Directory: "/var/log/app",
		File:      &logs.Entry{Name: "app.log", Path: "/var/log/app/app.log", Size: 6, ModTime: mod, Regular: true},
		Lines:     []string{"a", "b"},
	}

	resp := result.Response("req-1")
	if resp.Status != "ok" || !resp.OK() {
		t.Fatalf("unexpected status: %q", resp.Status)
	}
	if resp.File == nil || resp.File.Name != "app.log" {
		t.Fatalf("unexpected file: %+v", resp.File)
	}
	if resp.File.ModifiedAt != "2024-05-01T12:30:00.000Z" {
		t.Fatalf("unexpected modifiedAt: %q", resp.File.ModifiedAt)
	}
	if resp.Error != nil {
		t.Fatalf("expected no error, got %+v", resp.Error)
	}
	if resp.RequestID != "req-1" {
		t.Fatalf("unexpected request id: %q", resp.RequestID)
	}
}

func TestResponseEmptyEncodesLinesArray(t *testing.T) {
	result := logs.Result{Status: logs.StatusEmpty, Directory: "/logs", Err: logs.ErrNoRegularFiles}
	resp := result.Response("")
	if resp.Error != nil {
		t.Fatalf("empty result must not carry an error: %+v", resp.Error)
	}
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"lines":[]`) {
		t.Fatalf("expected empty lines array, got %s", data)
	}
}

func TestResponseError(t *testing.T) {
	err := fmt.Errorf("%w: stat /missing: no such file", logs.ErrDirectoryUnavailable)
	result := logs.Result{Status: logs.StatusError, Directory: "/missing", Err: err}
	resp := result.Response("")
	if resp.OK() {
		t.Fatal("error response reported OK")
	}
	if resp.Error == nil || resp.Error.Kind != "directory_unavailable" {
		t.Fatalf("unexpected error info: %+v", resp.Error)
	}
	if !strings.Contains(resp.Error.Message, "/missing") {
		t.Fatalf("expected message to include path, got %q", resp.Error.Message)
	}
	if resp.Lines == nil || len(resp.Lines) != 0 {
		t.Fatalf("expected non-nil empty lines, got %#v", resp.Lines)
	}
}
