package migration

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"notes-api/internal/model"
	"notes-api/pkg/log"
)

// Run creates or updates the users and items tables.
// Users go first so the items foreign key has a target.
func Run(ctx context.Context, db *gorm.DB, l log.Logger) error {
	l.Info(ctx, "Running database migrations...")

	if err := db.WithContext(ctx).AutoMigrate(&model.User{}, &model.Item{}); err != nil {
		l.Errorf(ctx, "migration.Run: %v", err)
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	l.Info(ctx, "Database migrated successfully")
	return nil
}
