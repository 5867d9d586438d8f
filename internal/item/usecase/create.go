package usecase

import (
	"context"
	"errors"

	"notes-api/internal/item"
	repo "notes-api/internal/item/repository"
)

// Create stores a new Item. Absent text fields are stored as NULL.
func (uc *implUseCase) Create(ctx context.Context, input item.CreateInput) (item.CreateOutput, error) {
	if uc.requireOwner && input.OwnerID == nil {
		return item.CreateOutput{}, item.ErrOwnerRequired
	}

	it, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Title:    input.Title,
		Category: input.Category,
		Content:  input.Content,
		OwnerID:  input.OwnerID,
	})
	if errors.Is(err, repo.ErrInvalidOwner) {
		return item.CreateOutput{}, item.ErrOwnerConstraint
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return item.CreateOutput{}, err
	}

	return item.CreateOutput{Item: it}, nil
}
