package gormdb

import (
	"fmt"

	"gorm.io/gorm"

	"notes-api/internal/item/repository"
	"notes-api/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a gorm-backed Repository for the item domain.
func New(db *gorm.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("item/repository/gormdb: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("item/repository/gormdb.%s", method)
}
