// Package logging assembles structured slog loggers and formatting helpers used
// across logview.
//
// It owns the console/JSON handlers, centralizes level and output plumbing,
// and exposes context helpers so HTTP handlers can tag every line of a fetch
// with the request's correlation ID. The package also provides a no-op logger
// for tests and wiring code that cannot fail.
package logging
