package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	repo "notes-api/internal/item/repository"
	"notes-api/internal/model"
)

var mutableColumns = []string{"item_title", "item_category", "item_content"}

// CreateItem inserts a new Item row. The owner id is stored without an existence check.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	it := model.Item{
		Title:    opt.Title,
		Category: opt.Category,
		Content:  opt.Content,
		UserID:   opt.OwnerID,
	}

	if err := r.db.WithContext(ctx).Omit("Owner").Create(&it).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return model.Item{}, repo.ErrInvalidOwner
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return model.Item{}, repo.ErrFailedToInsert
	}
	return it, nil
}

// GetOneItem retrieves a single Item by id.
func (r *implRepository) GetOneItem(ctx context.Context, id int64) (model.Item, error) {
	var it model.Item
	err := r.db.WithContext(ctx).Where("item_id = ?", id).Take(&it).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Item{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return model.Item{}, repo.ErrFailedToGet
	}
	return it, nil
}

// ListItems returns every Item ordered by id.
func (r *implRepository) ListItems(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	if err := r.db.WithContext(ctx).Order("item_id").Find(&items).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	return items, nil
}

// UpdateItem reads and overwrites an Item inside one transaction.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	var it model.Item
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", opt.ID).Take(&it).Error; err != nil {
			return err
		}

		it.Title = opt.Title
		it.Category = opt.Category
		it.Content = opt.Content
		columns := mutableColumns
		if opt.SetOwner {
			it.UserID = opt.OwnerID
			columns = append(append([]string{}, mutableColumns...), "item_user_id")
		}

		return tx.Model(&it).Select(columns).Updates(&it).Error
	})
	switch {
	case err == nil:
		return it, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return model.Item{}, repo.ErrNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return model.Item{}, repo.ErrInvalidOwner
	default:
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return model.Item{}, repo.ErrFailedToUpdate
	}
}

// DeleteItem physically removes an Item.
func (r *implRepository) DeleteItem(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Item{}, id)
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), res.Error)
		return repo.ErrFailedToDelete
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
