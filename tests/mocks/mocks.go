// Package mocks provides testify mocks for the application ports.
package mocks

import (
	"context"

	"todo-backend/domain/events"
	"todo-backend/domain/todo"

	"github.com/stretchr/testify/mock"
)

// MockTodoRepository is a testify mock of ports.TodoRepository
type MockTodoRepository struct {
	mock.Mock
}

func (m *MockTodoRepository) ListByOwner(ctx context.Context, ownerID string) ([]todo.TodoItem, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]todo.TodoItem), args.Error(1)
}

func (m *MockTodoRepository) ListPublic(ctx context.Context) ([]todo.PublicTodoItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]todo.PublicTodoItem), args.Error(1)
}

func (m *MockTodoRepository) GetOne(ctx context.Context, ownerID, todoID string) (*todo.TodoItem, error) {
	args := m.Called(ctx, ownerID, todoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*todo.TodoItem), args.Error(1)
}

func (m *MockTodoRepository) Create(ctx context.Context, item todo.TodoItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockTodoRepository) Update(ctx context.Context, ownerID, todoID string, upd todo.TodoUpdate) error {
	args := m.Called(ctx, ownerID, todoID, upd)
	return args.Error(0)
}

func (m *MockTodoRepository) Delete(ctx context.Context, ownerID, todoID string) error {
	args := m.Called(ctx, ownerID, todoID)
	return args.Error(0)
}

func (m *MockTodoRepository) AttachFile(ctx context.Context, ownerID, todoID string) error {
	args := m.Called(ctx, ownerID, todoID)
	return args.Error(0)
}

// MockAttachmentSigner is a testify mock of ports.AttachmentSigner
type MockAttachmentSigner struct {
	mock.Mock
}

func (m *MockAttachmentSigner) IssueUploadURL(ctx context.Context, todoID string) (string, error) {
	args := m.Called(ctx, todoID)
	return args.String(0), args.Error(1)
}

// MockEventPublisher is a testify mock of ports.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event events.TodoEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockTodoService is a testify mock of ports.TodoService
type MockTodoService struct {
	mock.Mock
}

func (m *MockTodoService) ListForOwner(ctx context.Context, ownerID string) ([]todo.TodoItem, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]todo.TodoItem), args.Error(1)
}

func (m *MockTodoService) ListPublic(ctx context.Context, callerID string) ([]todo.PublicTodoItem, error) {
	args := m.Called(ctx, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]todo.PublicTodoItem), args.Error(1)
}

func (m *MockTodoService) GetOne(ctx context.Context, ownerID, todoID string) (*todo.TodoItem, error) {
	args := m.Called(ctx, ownerID, todoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*todo.TodoItem), args.Error(1)
}

func (m *MockTodoService) Create(ctx context.Context, req todo.CreateTodoRequest, ownerID string) (*todo.TodoItem, error) {
	args := m.Called(ctx, req, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*todo.TodoItem), args.Error(1)
}

func (m *MockTodoService) Update(ctx context.Context, req todo.UpdateTodoRequest, ownerID, todoID string) (*todo.TodoUpdate, error) {
	args := m.Called(ctx, req, ownerID, todoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*todo.TodoUpdate), args.Error(1)
}

func (m *MockTodoService) Delete(ctx context.Context, ownerID, todoID string) error {
	args := m.Called(ctx, ownerID, todoID)
	return args.Error(0)
}

func (m *MockTodoService) RequestAttachmentUpload(ctx context.Context, ownerID, todoID string) (string, error) {
	args := m.Called(ctx, ownerID, todoID)
	return args.String(0), args.Error(1)
}
