package user

import "notes-api/internal/model"

// --- UseCase Inputs ---

type SignupInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Name     string
	Password string
}

// --- UseCase Outputs ---

type SignupOutput struct {
	User model.User
}

type LoginOutput struct {
	User model.User
}

type ListOutput struct {
	Users []model.User
}

type DetailOutput struct {
	User model.User
}
