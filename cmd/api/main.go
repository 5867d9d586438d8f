package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"notes-api/config"
	_ "notes-api/docs" // Swagger docs
	"notes-api/internal/httpserver"
	"notes-api/internal/migration"
	"notes-api/pkg/database"
	"notes-api/pkg/log"
)

// @title       Notes API
// @description CRUD backend for user accounts and notes.
// @version     1
// @host        localhost:5000
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

	logger.Info(ctx, "Starting Notes API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Store
	db, err := database.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Warnf(ctx, "Failed to close database: %v", err)
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := migration.Run(ctx, db, logger); err != nil {
			logger.Error(ctx, "Failed to migrate database: ", err)
			return
		}
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ReadTimeout:     cfg.HTTPServer.ReadTimeout,
		WriteTimeout:    cfg.HTTPServer.WriteTimeout,
		IdleTimeout:     cfg.HTTPServer.IdleTimeout,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		RequestTimeout:  cfg.HTTPServer.RequestTimeout,
		SwaggerEnabled:  cfg.HTTPServer.SwaggerEnabled,
		DB:              db,
		Service:         cfg.Service,
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
