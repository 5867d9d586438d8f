package user

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrDuplicateName    = errors.New("user name already exists")
	ErrWrongCredentials = errors.New("wrong username or password")
	ErrUserReferenced   = errors.New("user is still referenced by items")
)
