package item

import "errors"

var (
	ErrItemNotFound    = errors.New("item not found")
	ErrOwnerRequired   = errors.New("item_user_id is required")
	ErrOwnerConstraint = errors.New("item_user_id does not reference an existing user")
)
