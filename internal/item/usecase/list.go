package usecase

import (
	"context"

	"notes-api/internal/item"
)

// List returns every Item ordered by id.
func (uc *implUseCase) List(ctx context.Context) (item.ListOutput, error) {
	items, err := uc.repo.ListItems(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return item.ListOutput{}, err
	}
	return item.ListOutput{Items: items}, nil
}
