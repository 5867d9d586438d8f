package usecase

import (
	"context"
	"errors"

	"notes-api/internal/user"
	repo "notes-api/internal/user/repository"
)

// List returns every account ordered by id.
func (uc *implUseCase) List(ctx context.Context) (user.ListOutput, error) {
	users, err := uc.repo.ListUsers(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListUsers: %v", err)
		return user.ListOutput{}, err
	}
	return user.ListOutput{Users: users}, nil
}

// Detail retrieves a single account. Returns ErrUserNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (user.DetailOutput, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: id})
	if errors.Is(err, repo.ErrNotFound) {
		return user.DetailOutput{}, user.ErrUserNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneUser: %v", err)
		return user.DetailOutput{}, err
	}
	return user.DetailOutput{User: u}, nil
}

// Delete removes an account. Items it owns keep their owner id.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	err := uc.repo.DeleteUser(ctx, id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repo.ErrNotFound):
		return user.ErrUserNotFound
	case errors.Is(err, repo.ErrReferenced):
		return user.ErrUserReferenced
	default:
		uc.l.Errorf(ctx, "uc.Delete DeleteUser: %v", err)
		return err
	}
}
