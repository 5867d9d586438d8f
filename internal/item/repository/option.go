package repository

// CreateItemOptions holds parameters for inserting a new Item.
type CreateItemOptions struct {
	Title    *string
	Category *string
	Content  *string
	OwnerID  *int64
}

// UpdateItemOptions holds parameters for overwriting an existing Item.
// OwnerID is only written when SetOwner is true.
type UpdateItemOptions struct {
	ID       int64
	Title    *string
	Category *string
	Content  *string
	OwnerID  *int64
	SetOwner bool
}
