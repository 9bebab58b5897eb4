package main

import (
	"log/slog"
	"net/http"
	"path/filepath"

	"logview/internal/config"
	"logview/internal/logs"
	"logview/internal/web"
)

func buildHandler(cfg *config.Config, logger *slog.Logger) http.Handler {
	fetcher := logs.NewFetcher(cfg.Paths.LogDir, logger, logs.WithCache(cfg.Logs.Cache))
	return web.New(fetcher, logger).Handler()
}

func stateLogPath(cfg *config.Config) string {
	if cfg == nil || cfg.Paths.StateDir == "" {
		return ""
	}
	return filepath.Join(cfg.Paths.StateDir, "logview.log")
}
