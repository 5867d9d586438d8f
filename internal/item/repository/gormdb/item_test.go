package gormdb

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"notes-api/config"
	repo "notes-api/internal/item/repository"
	"notes-api/internal/migration"
	"notes-api/pkg/database"
	"notes-api/pkg/log"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()
	db, err := database.Open(ctx, config.DatabaseConfig{
		Driver:   config.DriverSQLite,
		Path:     database.MemoryPath,
		LogLevel: "silent",
	}, log.NewNop())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { database.Close(db) })

	if err := migration.Run(ctx, db, log.NewNop()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func strPtr(s string) *string { return &s }
func idPtr(id int64) *int64   { return &id }

func strVal(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}

func TestCreateAndGetItem(t *testing.T) {
	ctx := context.Background()
	r := New(newTestDB(t), log.NewNop())

	created, err := r.CreateItem(ctx, repo.CreateItemOptions{
		Title:    strPtr("groceries"),
		Category: strPtr("todo"),
		Content:  strPtr("milk, eggs"),
		OwnerID:  idPtr(99),
	})
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected first id to be 1, got %d", created.ID)
	}

	got, err := r.GetOneItem(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetOneItem: %v", err)
	}
	if strVal(got.Title) != "groceries" || strVal(got.Category) != "todo" || strVal(got.Content) != "milk, eggs" {
		t.Errorf("unexpected fields %s/%s/%s", strVal(got.Title), strVal(got.Category), strVal(got.Content))
	}
	// the owner is stored as given, even when no such user exists
	if got.UserID == nil || *got.UserID != 99 {
		t.Errorf("expected owner 99, got %v", got.UserID)
	}
}

func TestCreateItem_NullFields(t *testing.T) {
	ctx := context.Background()
	r := New(newTestDB(t), log.NewNop())

	created, err := r.CreateItem(ctx, repo.CreateItemOptions{Title: strPtr("only title")})
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	got, err := r.GetOneItem(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetOneItem: %v", err)
	}
	if got.Category != nil || got.Content != nil || got.UserID != nil {
		t.Errorf("expected NULL fields, got %+v", got)
	}
}

func TestGetOneItem_NotFound(t *testing.T) {
	r := New(newTestDB(t), log.NewNop())

	if _, err := r.GetOneItem(context.Background(), 7); !errors.Is(err, repo.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateItem(t *testing.T) {
	ctx := context.Background()
	r := New(newTestDB(t), log.NewNop())

	created, err := r.CreateItem(ctx, repo.CreateItemOptions{
		Title:    strPtr("old"),
		Category: strPtr("c1"),
		Content:  strPtr("body"),
		OwnerID:  idPtr(1),
	})
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	t.Run("overwrites fields and keeps owner", func(t *testing.T) {
		updated, err := r.UpdateItem(ctx, repo.UpdateItemOptions{
			ID:    created.ID,
			Title: strPtr("new"),
		})
		if err != nil {
			t.Fatalf("UpdateItem: %v", err)
		}
		if strVal(updated.Title) != "new" || updated.Category != nil || updated.Content != nil {
			t.Errorf("unexpected returned item %+v", updated)
		}

		got, err := r.GetOneItem(ctx, created.ID)
		if err != nil {
			t.Fatalf("GetOneItem: %v", err)
		}
		if strVal(got.Title) != "new" || got.Category != nil || got.Content != nil {
			t.Errorf("expected overwrite, got %s/%s/%s", strVal(got.Title), strVal(got.Category), strVal(got.Content))
		}
		if got.UserID == nil || *got.UserID != 1 {
			t.Errorf("expected owner to be kept, got %v", got.UserID)
		}
	})

	t.Run("sets owner", func(t *testing.T) {
		if _, err := r.UpdateItem(ctx, repo.UpdateItemOptions{
			ID:       created.ID,
			Title:    strPtr("new"),
			OwnerID:  idPtr(2),
			SetOwner: true,
		}); err != nil {
			t.Fatalf("UpdateItem: %v", err)
		}

		got, err := r.GetOneItem(ctx, created.ID)
		if err != nil {
			t.Fatalf("GetOneItem: %v", err)
		}
		if got.UserID == nil || *got.UserID != 2 {
			t.Errorf("expected owner 2, got %v", got.UserID)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := r.UpdateItem(ctx, repo.UpdateItemOptions{ID: 404, Title: strPtr("x")})
		if !errors.Is(err, repo.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestListAndDeleteItems(t *testing.T) {
	ctx := context.Background()
	r := New(newTestDB(t), log.NewNop())

	const n, m = 5, 2
	var ids []int64
	for i := 0; i < n; i++ {
		it, err := r.CreateItem(ctx, repo.CreateItemOptions{Title: strPtr("note")})
		if err != nil {
			t.Fatalf("CreateItem: %v", err)
		}
		ids = append(ids, it.ID)
	}

	if _, err := r.UpdateItem(ctx, repo.UpdateItemOptions{ID: ids[4], Title: strPtr("last write")}); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}

	for _, id := range ids[:m] {
		if err := r.DeleteItem(ctx, id); err != nil {
			t.Fatalf("DeleteItem %d: %v", id, err)
		}
	}
	if err := r.DeleteItem(ctx, ids[0]); !errors.Is(err, repo.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
	if _, err := r.GetOneItem(ctx, ids[0]); !errors.Is(err, repo.ErrNotFound) {
		t.Errorf("expected deleted item to be gone, got %v", err)
	}

	items, err := r.ListItems(ctx)
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != n-m {
		t.Fatalf("expected %d items, got %d", n-m, len(items))
	}
	for i, it := range items {
		if it.ID != ids[m+i] {
			t.Errorf("items[%d]: expected id %d, got %d", i, ids[m+i], it.ID)
		}
	}
	if strVal(items[len(items)-1].Title) != "last write" {
		t.Errorf("expected last-written state, got %s", strVal(items[len(items)-1].Title))
	}
}

func TestListItems_Empty(t *testing.T) {
	r := New(newTestDB(t), log.NewNop())

	items, err := r.ListItems(context.Background())
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
}
