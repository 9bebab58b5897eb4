package logs

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"logview/internal/logging"
)

// Status is the outcome of a fetch.
type Status string

const (
	StatusOK    Status = "ok"
	StatusEmpty Status = "empty"
	StatusError Status = "error"
)

// Result is the outcome of one fetch. File is set whenever a file was
// selected, including when reading it failed afterwards.
type Result struct {
	Status    Status
	Directory string
	File      *Entry
	Lines     []string
	Err       error
}

// Kind classifies Err. It is KindNone for ok and empty results.
func (r Result) Kind() ErrorKind {
	if r.Status != StatusError {
		return KindNone
	}
	return Classify(r.Err)
}

// Fetcher runs the scan, select and read pipeline against a log directory.
// A Fetcher is safe for concurrent use.
type Fetcher struct {
	dir    string
	logger *slog.Logger
	cache  *lineCache
}

// FetcherOption customises a Fetcher.
type FetcherOption func(*Fetcher)

// WithCache keeps the lines of the last file read per directory and reuses
// them while that file's path, size and modification time are unchanged.
func WithCache(enabled bool) FetcherOption {
	return func(f *Fetcher) {
		if enabled {
			f.cache = newLineCache()
		} else {
			f.cache = nil
		}
	}
}

// NewFetcher returns a Fetcher reading from dir by default.
func NewFetcher(dir string, logger *slog.Logger, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		dir:    strings.TrimSpace(dir),
		logger: logging.NewComponentLogger(logger, "logs"),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// Directory returns the default directory used when no override is given.
func (f *Fetcher) Directory() string {
	return f.dir
}

// Fetch resolves the latest file in overrideDir, or in the default directory
// when overrideDir is blank, and returns its lines. It never panics on
// filesystem conditions: failures and empty directories are reported through
// the Result. The context only carries logging fields; a fetch is not
// cancelled once started.
func (f *Fetcher) Fetch(ctx context.Context, overrideDir string) Result {
	dir := strings.TrimSpace(overrideDir)
	if dir == "" {
		dir = f.dir
	}
	logger := logging.WithContext(ctx, f.logger).With(logging.String("directory", dir))
	started := time.Now()

	entries, err := Scan(dir, logger)
	if err != nil {
		logging.WarnWithContext(logger, "log directory unavailable", "log_fetch_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check paths.log_dir or LOG_FILE_DIRECTORY"),
			logging.String(logging.FieldImpact, "logs view shows an error"),
		)
		return Result{Status: StatusError, Directory: dir, Err: err}
	}

	latest, ok := SelectLatest(entries)
	if !ok {
		logger.Debug("log directory has no regular files", logging.Int("entries", len(entries)))
		return Result{Status: StatusEmpty, Directory: dir, Lines: []string{}, Err: ErrNoRegularFiles}
	}

	lines, cached := f.cache.lookup(dir, latest)
	if !cached {
		lines, err = ReadLines(latest.Path)
		if err != nil {
			logging.WarnWithContext(logger, "selected log file unreadable", "log_fetch_failed",
				logging.String("file", latest.Path),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "the file may have been removed or its permissions changed"),
				logging.String(logging.FieldImpact, "logs view shows an error"),
			)
			return Result{Status: StatusError, Directory: dir, File: &latest, Err: err}
		}
		f.cache.store(dir, latest, lines)
	}

	logger.Debug("log fetch complete",
		logging.String("file", latest.Path),
		logging.Int("lines", len(lines)),
		logging.Bool("cached", cached),
		logging.Duration("elapsed", time.Since(started)),
	)
	return Result{Status: StatusOK, Directory: dir, File: &latest, Lines: lines}
}
