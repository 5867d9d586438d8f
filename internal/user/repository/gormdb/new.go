package gormdb

import (
	"fmt"

	"gorm.io/gorm"

	"notes-api/internal/user/repository"
	"notes-api/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a gorm-backed Repository for the user domain.
func New(db *gorm.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("user/repository/gormdb: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("user/repository/gormdb.%s", method)
}
