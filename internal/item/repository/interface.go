package repository

import (
	"context"

	"notes-api/internal/model"
)

// Repository is the data store of the item domain.
// Lookups by id return ErrNotFound on a miss.
type Repository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.Item, error)
	GetOneItem(ctx context.Context, id int64) (model.Item, error)
	ListItems(ctx context.Context) ([]model.Item, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (model.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}
