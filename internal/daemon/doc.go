// Package daemon owns the long-running logview process.
//
// It holds a flock-based lock in the state directory so only one instance
// serves at a time, runs the web handler on the configured bind address, and
// reports runtime status. Request handling lives in internal/web; the daemon
// focuses on startup, shutdown, and the listener lifecycle.
package daemon
