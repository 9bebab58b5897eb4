package logs

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"logview/internal/logging"
)

// Entry describes one direct child of a scanned directory.
type Entry struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
	Regular bool
}

// Scan lists the direct children of dir in filename order. Symlinks are
// followed, so a link to a regular file counts as a regular file. Entries
// whose metadata cannot be read are logged and skipped.
func Scan(dir string, logger *slog.Logger) ([]Entry, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %w", ErrDirectoryUnavailable, dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDirectoryUnavailable, dir)
	}

	children, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrDirectoryUnavailable, dir, err)
	}

	entries := make([]Entry, 0, len(children))
	for _, child := range children {
		path := filepath.Join(dir, child.Name())
		meta, err := os.Stat(path)
		if err != nil {
			logging.WarnWithContext(logger, "skipping log entry without metadata", "log_entry_metadata_unavailable",
				logging.String("path", path),
				logging.Error(fmt.Errorf("%w: %w", ErrMetadataUnavailable, err)),
				logging.String(logging.FieldErrorHint, "check file permissions or dangling symlinks"),
				logging.String(logging.FieldImpact, "entry is not considered for selection"),
			)
			continue
		}
		entries = append(entries, Entry{
			Path:    path,
			Name:    child.Name(),
			Size:    meta.Size(),
			ModTime: meta.ModTime(),
			Regular: meta.Mode().IsRegular(),
		})
	}
	return entries, nil
}
