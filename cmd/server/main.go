// Package main implements the entry point for the taskwell API server,
// a multi-user task tracker with token-based authentication.
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/taskwell/taskwell-api/internal/config"
	"github.com/taskwell/taskwell-api/internal/platform/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, err := logger.Setup(cfg.Server); err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	slog.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	app, err := newApplication(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize application", "error", err)
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Close()

	if err := app.serve(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		log.Fatalf("Server exited with error: %v", err)
	}
}
