package main

import (
	"context"
	"fmt"

	"notes-api/config"
	"notes-api/internal/migration"
	"notes-api/pkg/database"
	"notes-api/pkg/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	db, err := database.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := migration.Run(ctx, db, logger); err != nil {
		logger.Fatalf(ctx, "Failed to migrate database: %v", err)
	}
}
