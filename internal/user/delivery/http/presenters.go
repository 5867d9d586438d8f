package http

import (
	"notes-api/internal/model"
	"notes-api/internal/user"
)

// WrongCredentialsWarning is the body text of a failed login.
const WrongCredentialsWarning = "Wrong username or password"

// LoginSuccessMessage is the body text of a successful login.
const LoginSuccessMessage = "Login successful"

// DeletedMessage is the plain-text body of a successful account delete.
const DeletedMessage = "User account was deleted"

// --- Request DTOs ---

type signupReq struct {
	Name     string `json:"user_name"     form:"user_name"     binding:"required"`
	Email    string `json:"user_email"    form:"user_email"    binding:"required"`
	Password string `json:"user_password" form:"user_password" binding:"required"`
}

func (r signupReq) toInput() user.SignupInput {
	return user.SignupInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}

type loginReq struct {
	Name     string `json:"user_name"     form:"user_name"     binding:"required"`
	Password string `json:"user_password" form:"user_password" binding:"required"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{
		Name:     r.Name,
		Password: r.Password,
	}
}

// --- Response DTOs ---

// userResp mirrors the users table, password included.
type userResp struct {
	ID       int64  `json:"user_id"`
	Name     string `json:"user_name"`
	Email    string `json:"user_email"`
	Password string `json:"user_password"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Password: u.Password,
	}
}

func (h *handler) newSignupResp(out user.SignupOutput) userResp {
	return newUserResp(out.User)
}

func (h *handler) newDetailResp(out user.DetailOutput) userResp {
	return newUserResp(out.User)
}

func (h *handler) newListResp(out user.ListOutput) []userResp {
	users := make([]userResp, len(out.Users))
	for i, u := range out.Users {
		users[i] = newUserResp(u)
	}
	return users
}
