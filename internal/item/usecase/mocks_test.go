package usecase_test

import (
	"context"

	repo "notes-api/internal/item/repository"
	"notes-api/internal/model"
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
	createErr error
	getItem   model.Item
	getErr    error
	listItems []model.Item
	listErr   error
	updateErr error
	deleteErr error

	createOpt   *repo.CreateItemOptions
	updateOpt   *repo.UpdateItemOptions
	createCalls int
}

func (m *mockRepo) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	m.createCalls++
	m.createOpt = &opt
	if m.createErr != nil {
		return model.Item{}, m.createErr
	}
	return model.Item{ID: 1, Title: opt.Title, Category: opt.Category, Content: opt.Content, UserID: opt.OwnerID}, nil
}

func (m *mockRepo) GetOneItem(ctx context.Context, id int64) (model.Item, error) {
	return m.getItem, m.getErr
}

func (m *mockRepo) ListItems(ctx context.Context) ([]model.Item, error) {
	return m.listItems, m.listErr
}

func (m *mockRepo) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	m.updateOpt = &opt
	if m.updateErr != nil {
		return model.Item{}, m.updateErr
	}
	return model.Item{ID: opt.ID, Title: opt.Title, Category: opt.Category, Content: opt.Content, UserID: opt.OwnerID}, nil
}

func (m *mockRepo) DeleteItem(ctx context.Context, id int64) error {
	return m.deleteErr
}
