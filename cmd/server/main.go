// Package main implements the entry point for the NC News API server,
// a JSON REST API over topics, articles, comments, and users.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/ncnews/ncnews/internal/config"
	"github.com/ncnews/ncnews/internal/platform/logger"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		app.logger.Error("Server exited with error", "error", err)
	}
}

// initializeApp loads configuration, sets up logging, connects to the
// database, and assembles the application's dependencies.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	return newApplication(cfg, appLogger, db), nil
}
