package item

import "notes-api/internal/model"

// --- UseCase Inputs ---

// CreateInput carries the item fields. Nil means absent and is stored as NULL.
type CreateInput struct {
	Title    *string
	Category *string
	Content  *string
	OwnerID  *int64
}

// UpdateInput replaces title, category and content. A nil OwnerID keeps the stored owner.
type UpdateInput struct {
	ID       int64
	Title    *string
	Category *string
	Content  *string
	OwnerID  *int64
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Item model.Item
}

type ListOutput struct {
	Items []model.Item
}

type DetailOutput struct {
	Item model.Item
}

type UpdateOutput struct {
	Item model.Item
}
