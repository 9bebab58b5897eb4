package logs

import "errors"

var (
	// ErrDirectoryUnavailable reports that the log directory does not exist,
	// is not a directory, or cannot be listed.
	ErrDirectoryUnavailable = errors.New("log directory unavailable")
	// ErrNoRegularFiles reports a directory without any eligible file.
	ErrNoRegularFiles = errors.New("no regular files in log directory")
	// ErrFileUnreadable reports that the selected file could not be opened or read.
	ErrFileUnreadable = errors.New("log file unreadable")
	// ErrMetadataUnavailable reports a single entry whose metadata could not be read.
	ErrMetadataUnavailable = errors.New("log entry metadata unavailable")
)

// ErrorKind is the transport-friendly classification of a fetch failure.
type ErrorKind string

const (
	KindNone                 ErrorKind = ""
	KindDirectoryUnavailable ErrorKind = "directory_unavailable"
	KindNoRegularFiles       ErrorKind = "no_regular_files"
	KindFileUnreadable       ErrorKind = "file_unreadable"
	KindInternal             ErrorKind = "internal"
)

// Classify maps an error returned by this package onto an ErrorKind.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrDirectoryUnavailable):
		return KindDirectoryUnavailable
	case errors.Is(err, ErrNoRegularFiles):
		return KindNoRegularFiles
	case errors.Is(err, ErrFileUnreadable):
		return KindFileUnreadable
	default:
		return KindInternal
	}
}
