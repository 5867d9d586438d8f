package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"notes-api/internal/model"
	repo "notes-api/internal/user/repository"
)

// CreateUser inserts a new User row. The store assigns the id.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	u := model.User{
		Name:     opt.Name,
		Email:    opt.Email,
		Password: opt.Password,
	}

	if err := r.db.WithContext(ctx).Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return model.User{}, repo.ErrDuplicate
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

// GetOneUser retrieves a single User by the provided filters.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	q := r.db.WithContext(ctx)
	if opt.ID != 0 {
		q = q.Where("user_id = ?", opt.ID)
	}
	if opt.Name != "" {
		q = q.Where("user_name = ?", opt.Name)
	}

	var u model.User
	err := q.Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

// ListUsers returns every User ordered by id.
func (r *implRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("user_id").Find(&users).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListUsers"), err)
		return nil, repo.ErrFailedToList
	}
	return users, nil
}

// DeleteUser physically removes a User. Items pointing at it are left untouched.
func (r *implRepository) DeleteUser(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.User{}, id)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
			return repo.ErrReferenced
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteUser"), res.Error)
		return repo.ErrFailedToDelete
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
