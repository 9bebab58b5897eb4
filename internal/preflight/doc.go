// Package preflight provides readiness checks for the filesystem paths
// logview depends on.
//
// These checks run in two contexts:
//   - The daemon runs RunAll at startup and logs a warning for each failure.
//     A failing log directory does not stop the server: the logs page
//     reports the error until the directory appears.
//   - The CLI "logview check" command prints every result, and /healthz
//     reports whether the log directory is currently readable.
package preflight
