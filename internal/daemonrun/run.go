package daemonrun

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"logview/internal/config"
	"logview/internal/daemon"
	"logview/internal/logging"
	"logview/internal/logs"
	"logview/internal/preflight"
	"logview/internal/web"
)

// Options configures daemon process runtime behavior.
type Options struct {
	LogLevel    string
	Development bool
	// Bind overrides server.bind when non-empty.
	Bind string
}

// Run starts the logview daemon and blocks until ctx is cancelled or the
// process receives SIGINT/SIGTERM.
func Run(cmdCtx context.Context, cfg *config.Config, opts Options) error {
	if cfg == nil {
		return fmt.Errorf("config is required")
	}
	if bind := strings.TrimSpace(opts.Bind); bind != "" {
		cfg.Server.Bind = bind
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	signalCtx, cancel := signal.NotifyContext(cmdCtx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	started := time.Now()
	runID := started.UTC().Format("20060102T150405.000Z")
	logPath := filepath.Join(cfg.Paths.StateDir, fmt.Sprintf("logview-%s.log", runID))

	level := opts.LogLevel
	if strings.TrimSpace(level) == "" {
		level = cfg.Logging.Level
	}
	logger, err := logging.New(logging.Options{
		Level:            level,
		Format:           cfg.Logging.Format,
		OutputPaths:      []string{"stdout", logPath},
		ErrorOutputPaths: []string{"stderr", logPath},
		Development:      opts.Development,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger = logger.With(logging.String(logging.FieldRunID, uuid.NewString()))

	if err := ensureCurrentLogPointer(cfg.Paths.StateDir, logPath); err != nil {
		fmt.Fprintf(os.Stderr, "warn: unable to update logview.log link: %v\n", err)
	}
	logging.CleanupOldLogs(logger, cfg.Logging.RetentionDays, started,
		logging.RetentionTarget{Dir: cfg.Paths.StateDir, Pattern: "logview-*.log", Exclude: []string{logPath}},
	)
	logPreflight(logger, cfg)

	fetcher := logs.NewFetcher(cfg.Paths.LogDir, logger, logs.WithCache(cfg.Logs.Cache))
	server := web.New(fetcher, logger)

	d, err := daemon.New(cfg, logger, server.Handler(), logPath)
	if err != nil {
		return fmt.Errorf("create daemon: %w", err)
	}
	defer d.Close()

	if err := d.Start(signalCtx); err != nil {
		logging.ErrorWithContext(logger, "daemon start failed", "daemon_start_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check server.bind and that no other logview daemon holds the lock"),
			logging.String(logging.FieldImpact, "the logs page is not served"),
		)
		return err
	}

	<-signalCtx.Done()
	logger.Info("logview daemon shutting down")
	return nil
}

// ensureCurrentLogPointer points stateDir/logview.log at the current run log.
func ensureCurrentLogPointer(stateDir, target string) error {
	if stateDir == "" || target == "" {
		return nil
	}
	current := filepath.Join(stateDir, "logview.log")
	if err := os.Remove(current); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove existing log pointer: %w", err)
	}
	if err := os.Symlink(target, current); err == nil {
		return nil
	}
	if err := os.Link(target, current); err != nil {
		return fmt.Errorf("link log pointer: %w", err)
	}
	return nil
}

func logPreflight(logger *slog.Logger, cfg *config.Config) {
	results := preflight.RunAll(cfg)
	for _, r := range results {
		if r.Passed {
			logger.Debug("preflight check passed", logging.String("check", r.Name), logging.String("detail", r.Detail))
		}
	}
	for _, r := range preflight.Failed(results) {
		logging.WarnWithContext(logger, "preflight check failed", "preflight_failed",
			logging.String("check", r.Name),
			logging.String("detail", r.Detail),
			logging.String(logging.FieldErrorHint, "run `logview check` for details"),
			logging.String(logging.FieldImpact, "the logs page may show an error"),
		)
	}
}
