// Package main hosts the logview CLI.
//
// The Cobra command tree runs the web daemon, performs one-off fetches of the
// newest log file (locally or against a running server), lists a log
// directory, checks directory access, and scaffolds configuration. The
// behaviour itself lives in internal packages; commands here only parse
// flags and render output.
package main
