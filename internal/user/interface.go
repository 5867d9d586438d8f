package user

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Signup(ctx context.Context, input SignupInput) (SignupOutput, error)
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	List(ctx context.Context) (ListOutput, error)
	Detail(ctx context.Context, id int64) (DetailOutput, error)
	Delete(ctx context.Context, id int64) error
}
