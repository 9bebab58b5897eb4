package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"logview/internal/config"
	"logview/internal/daemon"
	"logview/internal/logging"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, _, _, err := config.Load("")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		log.Fatalf("prepare state directory: %v", err)
	}

	logger, err := logging.NewFromConfig(cfg, "")
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	d, err := daemon.New(cfg, logger, buildHandler(cfg, logger), stateLogPath(cfg))
	if err != nil {
		log.Fatalf("create daemon: %v", err)
	}
	defer d.Close()

	if err := d.Start(ctx); err != nil {
		log.Fatalf("start daemon: %v", err)
	}

	<-ctx.Done()
	logger.Info("logviewd shutting down")
}
