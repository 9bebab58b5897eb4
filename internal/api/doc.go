// Package api defines wire-format types and converters for the HTTP and
// websocket layer. The logs package converts its fetch results into these
// DTOs so the logs page and the CLI can render them without coupling to
// internal types.
//
// # Key Types
//
// LogsResponse: one fetch outcome. Status is "ok", "empty" or "error" so a
// consumer can tell lines, an empty directory and a failure apart.
//
// LogFile: the selected file's name, path, size and modification time.
//
// ErrorInfo: machine-readable kind plus human-readable message.
//
// # Design Notes
//
// DTOs use camelCase JSON tags for JavaScript consumers. Lines is always
// encoded as an array, never null. Timestamps use RFC3339 with milliseconds.
package api
