package usecase

import (
	"notes-api/internal/item"
	"notes-api/internal/item/repository"
	"notes-api/pkg/log"
)

// implUseCase is the private implementation of item.UseCase.
type implUseCase struct {
	repo         repository.Repository
	l            log.Logger
	requireOwner bool
}

var _ item.UseCase = (*implUseCase)(nil)

// New creates a new item UseCase implementation.
// With requireOwner set, create and update reject input without an owner id.
func New(repo repository.Repository, l log.Logger, requireOwner bool) *implUseCase {
	return &implUseCase{
		repo:         repo,
		l:            l,
		requireOwner: requireOwner,
	}
}
