package repository

// CreateUserOptions holds parameters for inserting a new User.
type CreateUserOptions struct {
	Name     string
	Email    string
	Password string
}

// GetOneUserOptions selects a single User. Non-zero fields are ANDed.
type GetOneUserOptions struct {
	ID   int64
	Name string
}
