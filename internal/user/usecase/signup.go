package usecase

import (
	"context"
	"errors"

	"notes-api/internal/user"
	repo "notes-api/internal/user/repository"
)

// Signup creates a new account after checking that the name is free.
// The unique index still decides when two signups race.
func (uc *implUseCase) Signup(ctx context.Context, input user.SignupInput) (user.SignupOutput, error) {
	_, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Name: input.Name})
	if err == nil {
		return user.SignupOutput{}, user.ErrDuplicateName
	}
	if !errors.Is(err, repo.ErrNotFound) {
		uc.l.Errorf(ctx, "uc.Signup GetOneUser: %v", err)
		return user.SignupOutput{}, err
	}

	u, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})
	if errors.Is(err, repo.ErrDuplicate) {
		return user.SignupOutput{}, user.ErrDuplicateName
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Signup CreateUser: %v", err)
		return user.SignupOutput{}, err
	}

	return user.SignupOutput{User: u}, nil
}
