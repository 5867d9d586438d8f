package usecase

import (
	"notes-api/internal/user"
	"notes-api/internal/user/repository"
	"notes-api/pkg/log"
)

// implUseCase is the private implementation of user.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

var _ user.UseCase = (*implUseCase)(nil)

// New creates a new user UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
