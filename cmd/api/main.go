package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"backoffice-dashboard/config"
	_ "backoffice-dashboard/docs" // Swagger docs
	"backoffice-dashboard/internal/httpserver"
	"backoffice-dashboard/pkg/log"
	"backoffice-dashboard/pkg/restapi"
)

// @title       Backoffice Dashboard
// @description Server rendered dashboard for barang, pelanggan and penjualan.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Backoffice Dashboard...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Backoffice API: %s", cfg.Backoffice.BaseURL)

	// 3. Backoffice API client
	client := restapi.NewClient(cfg.Backoffice.BaseURL, cfg.Backoffice.Timeout, logger)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		CORSOrigins:  cfg.CORS.AllowedOrigins,
		Client:       client,
		Cache:        cfg.Cache,
		RateLimit:    cfg.RateLimit,
		DismissAfter: cfg.Notice.DismissAfter,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
