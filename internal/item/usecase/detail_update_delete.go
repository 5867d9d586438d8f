package usecase

import (
	"context"
	"errors"

	"notes-api/internal/item"
	repo "notes-api/internal/item/repository"
)

// Detail retrieves a single Item by id. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (item.DetailOutput, error) {
	it, err := uc.repo.GetOneItem(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return item.DetailOutput{}, item.ErrItemNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneItem: %v", err)
		return item.DetailOutput{}, err
	}
	return item.DetailOutput{Item: it}, nil
}

// Update overwrites title, category and content of an existing Item.
// The owner changes only when one is supplied.
func (uc *implUseCase) Update(ctx context.Context, input item.UpdateInput) (item.UpdateOutput, error) {
	if uc.requireOwner && input.OwnerID == nil {
		return item.UpdateOutput{}, item.ErrOwnerRequired
	}

	it, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:       input.ID,
		Title:    input.Title,
		Category: input.Category,
		Content:  input.Content,
		OwnerID:  input.OwnerID,
		SetOwner: input.OwnerID != nil,
	})
	switch {
	case err == nil:
		return item.UpdateOutput{Item: it}, nil
	case errors.Is(err, repo.ErrNotFound):
		return item.UpdateOutput{}, item.ErrItemNotFound
	case errors.Is(err, repo.ErrInvalidOwner):
		return item.UpdateOutput{}, item.ErrOwnerConstraint
	default:
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return item.UpdateOutput{}, err
	}
}

// Delete removes an Item by id. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	err := uc.repo.DeleteItem(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return item.ErrItemNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return err
	}
	return nil
}
