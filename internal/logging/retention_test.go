package logging_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"logview/internal/logging"
)

func TestCleanupOldLogs(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	old := now.AddDate(0, 0, -10)

	write := func(name string, mtime time.Time) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		if err := os.Chtimes(path, mtime, mtime); err != nil {
			t.Fatalf("chtimes %s: %v", name, err)
		}
		return path
	}
	stale := write("logview-a.log", old)
	current := write("logview-b.log", old)
	fresh := write("logview-c.log", now)
	other := write("notes.txt", old)

	removed := logging.CleanupOldLogs(nil, 7, now, logging.RetentionTarget{
		Dir:     dir,
		Pattern: "logview-*.log",
		Exclude: []string{current},
	})
	if removed != 1 {
		t.Fatalf("expected 1 removal, got %d", removed)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Fatalf("expected stale log removed, stat err=%v", err)
	}
	for _, keep := range []string{current, fresh, other} {
		if _, err := os.Stat(keep); err != nil {
			t.Fatalf("expected %s kept: %v", keep, err)
		}
	}
}

func TestCleanupOldLogsDisabled(t *testing.T) {
	if removed := logging.CleanupOldLogs(nil, 0, time.Now(), logging.RetentionTarget{Dir: t.TempDir(), Pattern: "*"}); removed != 0 {
		t.Fatalf("expected no removals, got %d", removed)
	}
}
