package ports

import (
	"context"

	"todo-backend/domain/events"
	"todo-backend/domain/todo"
)

// TodoRepository defines the interface for todo item persistence.
// This is a port in hexagonal architecture - the domain doesn't know about the implementation
type TodoRepository interface {
	// ListByOwner retrieves all items for an owner. Zero results is a valid
	// empty slice, never an error.
	ListByOwner(ctx context.Context, ownerID string) ([]todo.TodoItem, error)

	// ListPublic retrieves the safe projection of every item whose
	// visibility flag is set, independent of owner.
	ListPublic(ctx context.Context) ([]todo.PublicTodoItem, error)

	// GetOne performs a point lookup scoped by the composite key.
	// Returns (nil, nil) when the key does not exist.
	GetOne(ctx context.Context, ownerID, todoID string) (*todo.TodoItem, error)

	// Create inserts an item unconditionally. A duplicate key overwrites.
	Create(ctx context.Context, item todo.TodoItem) error

	// Update replaces the mutable attributes of the identified item.
	// Returns a NotFound error when the owner-scoped key does not exist.
	Update(ctx context.Context, ownerID, todoID string, upd todo.TodoUpdate) error

	// Delete removes the item. Returns a NotFound error when the
	// owner-scoped key does not exist.
	Delete(ctx context.Context, ownerID, todoID string) error

	// AttachFile writes the deterministic attachment URL for the item via a
	// partial update. Returns a NotFound error when the key does not exist.
	AttachFile(ctx context.Context, ownerID, todoID string) error
}

// AttachmentSigner issues short-lived, write-scoped upload URLs addressed to
// a fixed object-storage location derived from the item identifier.
type AttachmentSigner interface {
	IssueUploadURL(ctx context.Context, todoID string) (string, error)
}

// EventPublisher publishes domain events after successful writes.
type EventPublisher interface {
	Publish(ctx context.Context, event events.TodoEvent) error
}

// TodoService is the orchestration layer between the HTTP handlers and the
// repository/signer ports.
type TodoService interface {
	ListForOwner(ctx context.Context, ownerID string) ([]todo.TodoItem, error)
	ListPublic(ctx context.Context, callerID string) ([]todo.PublicTodoItem, error)
	GetOne(ctx context.Context, ownerID, todoID string) (*todo.TodoItem, error)
	Create(ctx context.Context, req todo.CreateTodoRequest, ownerID string) (*todo.TodoItem, error)
	Update(ctx context.Context, req todo.UpdateTodoRequest, ownerID, todoID string) (*todo.TodoUpdate, error)
	Delete(ctx context.Context, ownerID, todoID string) error
	RequestAttachmentUpload(ctx context.Context, ownerID, todoID string) (string, error)
}
