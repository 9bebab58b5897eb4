package logs_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"logview/internal/logs"
)

func TestReadLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "no trailing newline", content: "a\nb\nc", want: []string{"a", "b", "c"}},
		{name: "trailing newline", content: "a\nb\nc\n", want: []string{"a", "b", "c"}},
		{name: "crlf", content: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "blank lines kept", content: "a\n\nb\n", want: []string{"a", "", "b"}},
		{name: "single newline", content: "\n", want: []string{""}},
		{name: "empty", content: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeLog(t, t.TempDir(), "app.log", tt.content, baseTime)
			got, err := logs.ReadLines(path)
			if err != nil {
				t.Fatalf("ReadLines returned error: %v", err)
			}
			if got == nil {
				t.Fatal("expected non-nil slice")
			}
			if !equalLines(got, tt.want) {
				t.Fatalf("expected %#v, got %#v", tt.want, got)
			}
		})
	}
}

func TestReadLinesLongLine(t *testing.T) {
	long := strings.Repeat("x", 256*1024)
	path := writeLog(t, t.TempDir(), "wide.log", "head\n"+long+"\ntail\n", baseTime)
	got, err := logs.ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines returned error: %v", err)
	}
	if len(got) != 3 || got[1] != long || got[2] != "tail" {
		t.Fatalf("unexpected lines: count=%d", len(got))
	}
}

func TestReadLinesMissingFile(t *testing.T) {
	_, err := logs.ReadLines(filepath.Join(t.TempDir(), "vanished.log"))
	if !errors.Is(err, logs.ErrFileUnreadable) {
		t.Fatalf("expected ErrFileUnreadable, got %v", err)
	}
	if logs.Classify(err) != logs.KindFileUnreadable {
		t.Fatalf("unexpected classification: %q", logs.Classify(err))
	}
}

func TestReadLinesDirectory(t *testing.T) {
	if _, err := logs.ReadLines(t.TempDir()); !errors.Is(err, logs.ErrFileUnreadable) {
		t.Fatalf("expected ErrFileUnreadable, got %v", err)
	}
}
