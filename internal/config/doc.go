// Package config loads, normalizes, and validates logview configuration data.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours the LOG_FILE_DIRECTORY environment override for the
// viewed log directory. Callers receive a resolved Config and pass the values
// they need explicitly; nothing downstream reads the environment on its own.
package config
