package usecase_test

import (
	"context"

	"notes-api/internal/model"
	repo "notes-api/internal/user/repository"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepo implements repository.Repository
type mockRepo struct {
	getOneFunc func(opt repo.GetOneUserOptions) (model.User, error)
	createFunc func(opt repo.CreateUserOptions) (model.User, error)
	listUsers  []model.User
	listErr    error
	deleteErr  error

	createCalls int
	deletedID   int64
}

func (m *mockRepo) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	m.createCalls++
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return model.User{ID: 1, Name: opt.Name, Email: opt.Email, Password: opt.Password}, nil
}

func (m *mockRepo) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(opt)
	}
	return model.User{}, repo.ErrNotFound
}

func (m *mockRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	return m.listUsers, m.listErr
}

func (m *mockRepo) DeleteUser(ctx context.Context, id int64) error {
	m.deletedID = id
	return m.deleteErr
}
