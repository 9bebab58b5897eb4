package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/gofrs/flock"

	"logview/internal/config"
	"logview/internal/logging"
)

// Daemon serves the web handler and enforces single-instance execution.
type Daemon struct {
	cfg     *config.Config
	logger  *slog.Logger
	server  *httpServer
	logPath string

	lockPath string
	lock     *flock.Flock

	running atomic.Bool
	ctx     context.Context
	cancel  context.CancelFunc
}

// Status represents daemon runtime information.
type Status struct {
	Running      bool
	Address      string
	LogDir       string
	LogPath      string
	LockFilePath string
	CacheEnabled bool
}

// New constructs a daemon serving handler on cfg.Server.Bind.
func New(cfg *config.Config, logger *slog.Logger, handler http.Handler, logPath string) (*Daemon, error) {
	if cfg == nil || logger == nil || handler == nil {
		return nil, errors.New("daemon requires config, logger, and handler")
	}
	bind := strings.TrimSpace(cfg.Server.Bind)
	if bind == "" {
		return nil, errors.New("daemon requires server.bind")
	}

	lockPath := cfg.LockPath()
	return &Daemon{
		cfg:      cfg,
		logger:   logger,
		server:   newHTTPServer(bind, handler, logger),
		logPath:  logPath,
		lockPath: lockPath,
		lock:     flock.New(lockPath),
	}, nil
}

// Start acquires the daemon lock and begins serving.
func (d *Daemon) Start(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another logview daemon instance is already running")
	}

	d.ctx, d.cancel = context.WithCancel(ctx)
	if err := d.server.start(d.ctx); err != nil {
		_ = d.lock.Unlock()
		d.cancel()
		d.ctx = nil
		d.cancel = nil
		return fmt.Errorf("start http server: %w", err)
	}

	d.running.Store(true)
	d.logger.Info("logview daemon started",
		logging.String("lock", d.lockPath),
		logging.String("address", d.server.addr()),
		logging.String("log_dir", d.cfg.Paths.LogDir),
	)
	return nil
}

// Stop shuts the listener down and releases the daemon lock.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.server.stop()
	if err := d.lock.Unlock(); err != nil {
		d.logger.Warn("failed to release daemon lock", logging.Error(err))
	}
	d.ctx = nil
	d.running.Store(false)
	d.logger.Info("logview daemon stopped")
}

// Close releases resources held by the daemon.
func (d *Daemon) Close() error {
	d.Stop()
	return nil
}

// Addr returns the bound listener address, or the configured bind while stopped.
func (d *Daemon) Addr() string {
	if addr := d.server.addr(); addr != "" {
		return addr
	}
	return d.server.bind
}

// LogPath returns the path to the daemon log file.
func (d *Daemon) LogPath() string {
	return d.logPath
}

// Status returns the current daemon status.
func (d *Daemon) Status() Status {
	return Status{
		Running:      d.running.Load(),
		Address:      d.Addr(),
		LogDir:       d.cfg.Paths.LogDir,
		LogPath:      d.logPath,
		LockFilePath: d.lockPath,
		CacheEnabled: d.cfg.Logs.Cache,
	}
}
