package migration

import (
	"context"
	"testing"

	"notes-api/config"
	"notes-api/internal/model"
	"notes-api/pkg/database"
	"notes-api/pkg/log"
)

func TestRun(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(ctx, config.DatabaseConfig{
		Driver:   config.DriverSQLite,
		Path:     database.MemoryPath,
		LogLevel: "silent",
	}, log.NewNop())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer database.Close(db)

	if err := Run(ctx, db, log.NewNop()); err != nil {
		t.Fatalf("first run: %v", err)
	}
	// running twice must be harmless
	if err := Run(ctx, db, log.NewNop()); err != nil {
		t.Fatalf("second run: %v", err)
	}

	m := db.Migrator()
	for _, table := range []string{"users", "items"} {
		if !m.HasTable(table) {
			t.Errorf("expected table %s", table)
		}
	}
	for _, col := range []string{"user_id", "user_name", "user_email", "user_password"} {
		if !m.HasColumn(&model.User{}, col) {
			t.Errorf("users: missing column %s", col)
		}
	}
	for _, col := range []string{"item_id", "item_title", "item_category", "item_content", "item_user_id"} {
		if !m.HasColumn(&model.Item{}, col) {
			t.Errorf("items: missing column %s", col)
		}
	}
}
