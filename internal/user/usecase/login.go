package usecase

import (
	"context"
	"errors"

	"notes-api/internal/user"
	repo "notes-api/internal/user/repository"
)

// Login succeeds only when the named user exists and the password matches exactly.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.LoginOutput, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Name: input.Name})
	if errors.Is(err, repo.ErrNotFound) {
		return user.LoginOutput{}, user.ErrWrongCredentials
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetOneUser: %v", err)
		return user.LoginOutput{}, err
	}

	if u.Password != input.Password {
		return user.LoginOutput{}, user.ErrWrongCredentials
	}

	return user.LoginOutput{User: u}, nil
}
