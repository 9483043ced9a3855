package services

import (
	"context"

	"todo-backend/application/ports"
	"todo-backend/domain/events"
	"todo-backend/domain/todo"
	"todo-backend/pkg/errors"
	"todo-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TodoService orchestrates the todo repository and the attachment signer.
// It generates identifiers and creation timestamps, enforces ownership on
// every mutating call, and publishes domain events after successful writes.
type TodoService struct {
	repo      ports.TodoRepository
	signer    ports.AttachmentSigner
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewTodoService creates a new todo service
func NewTodoService(
	repo ports.TodoRepository,
	signer ports.AttachmentSigner,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *TodoService {
	return &TodoService{
		repo:      repo,
		signer:    signer,
		publisher: publisher,
		logger:    logger,
	}
}

var _ ports.TodoService = (*TodoService)(nil)

// ListForOwner returns all items belonging to the owner. No items is a valid
// empty result, not a failure.
func (s *TodoService) ListForOwner(ctx context.Context, ownerID string) ([]todo.TodoItem, error) {
	if ownerID == "" {
		return nil, errors.NewUnauthorizedError("missing caller identity")
	}
	return s.repo.ListByOwner(ctx, ownerID)
}

// ListPublic returns the safe projection of all publicly visible items.
// Callers must be authenticated even though the listing is not owner-scoped.
func (s *TodoService) ListPublic(ctx context.Context, callerID string) ([]todo.PublicTodoItem, error) {
	if callerID == "" {
		return nil, errors.NewUnauthorizedError("missing caller identity")
	}
	return s.repo.ListPublic(ctx)
}

// GetOne retrieves a single item by its owner-scoped key.
func (s *TodoService) GetOne(ctx context.Context, ownerID, todoID string) (*todo.TodoItem, error) {
	item, err := s.repo.GetOne(ctx, ownerID, todoID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errors.NewNotFoundError("todo")
	}
	return item, nil
}

// Create validates the request, generates the identifier and creation
// timestamp, and writes the item with completion and visibility defaulted off.
func (s *TodoService) Create(ctx context.Context, req todo.CreateTodoRequest, ownerID string) (*todo.TodoItem, error) {
	if ownerID == "" {
		return nil, errors.NewUnauthorizedError("missing caller identity")
	}
	if req.Name == "" {
		return nil, errors.NewValidationError("name is required")
	}
	if req.DueDate == "" {
		return nil, errors.NewValidationError("dueDate is required")
	}

	item := todo.TodoItem{
		UserID:    ownerID,
		TodoID:    uuid.New().String(),
		Name:      req.Name,
		DueDate:   req.DueDate,
		Done:      false,
		CreatedAt: utils.NowRFC3339(),
		IsPublic:  false,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("Todo created",
		zap.String("todoID", item.TodoID),
		zap.String("userID", ownerID),
	)

	s.publish(ctx, events.NewTodoCreated(ownerID, item.TodoID))

	return &item, nil
}

// Update performs a full-field replace of the item's mutable attributes.
// A cross-owner or missing key surfaces as NotFound from the repository's
// conditional write rather than silently succeeding.
func (s *TodoService) Update(ctx context.Context, req todo.UpdateTodoRequest, ownerID, todoID string) (*todo.TodoUpdate, error) {
	if ownerID == "" {
		return nil, errors.NewUnauthorizedError("missing caller identity")
	}
	if req.Name == "" {
		return nil, errors.NewValidationError("name is required")
	}
	if req.DueDate == "" {
		return nil, errors.NewValidationError("dueDate is required")
	}

	upd := todo.TodoUpdate{
		Name:     req.Name,
		DueDate:  req.DueDate,
		Done:     req.Done,
		IsPublic: req.IsPublic,
	}

	if err := s.repo.Update(ctx, ownerID, todoID, upd); err != nil {
		return nil, err
	}

	s.logger.Info("Todo updated",
		zap.String("todoID", todoID),
		zap.String("userID", ownerID),
		zap.Bool("done", upd.Done),
		zap.Bool("isPublic", upd.IsPublic),
	)

	return &upd, nil
}

// Delete removes the item by its owner-scoped key.
func (s *TodoService) Delete(ctx context.Context, ownerID, todoID string) error {
	if ownerID == "" {
		return errors.NewUnauthorizedError("missing caller identity")
	}

	if err := s.repo.Delete(ctx, ownerID, todoID); err != nil {
		return err
	}

	s.logger.Info("Todo deleted",
		zap.String("todoID", todoID),
		zap.String("userID", ownerID),
	)

	s.publish(ctx, events.NewTodoDeleted(ownerID, todoID))

	return nil
}

// RequestAttachmentUpload issues a pre-signed upload URL and writes the
// attachment reference onto the item. The reference is written the moment the
// URL request succeeds, not when the file lands in storage; a reference can
// point to an object the client never uploads.
func (s *TodoService) RequestAttachmentUpload(ctx context.Context, ownerID, todoID string) (string, error) {
	if ownerID == "" {
		return "", errors.NewUnauthorizedError("missing caller identity")
	}

	uploadURL, err := s.signer.IssueUploadURL(ctx, todoID)
	if err != nil {
		return "", err
	}

	if err := s.repo.AttachFile(ctx, ownerID, todoID); err != nil {
		return "", err
	}

	s.logger.Info("Attachment upload URL issued",
		zap.String("todoID", todoID),
		zap.String("userID", ownerID),
	)

	return uploadURL, nil
}

// publish sends a domain event best-effort; publish failures are logged and
// never surfaced to the caller.
func (s *TodoService) publish(ctx context.Context, event events.TodoEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish event",
			zap.String("eventType", event.EventType),
			zap.String("todoID", event.TodoID),
			zap.Error(err),
		)
	}
}
