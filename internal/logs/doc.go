// Package logs resolves the most recently modified file in a log directory
// and returns its contents as ordered lines.
//
// The pipeline is split into three steps that are usable on their own: Scan
// lists the direct children of a directory with their metadata, SelectLatest
// picks the freshest regular file, and ReadLines splits a file into lines.
// Fetcher composes them into a single read-only fetch whose Result tells
// callers apart "lines", "empty directory" and "error".
//
// Client talks to a running server's /api/logs endpoint so the CLI can show
// the same view the web page renders.
package logs
