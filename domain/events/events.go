// Package events defines the domain events published after successful writes.
package events

import (
	"time"

	"github.com/google/uuid"
)

// Source identifies this service on the event bus.
const Source = "todo-backend"

// Event type names.
const (
	TypeTodoCreated = "TodoCreated"
	TypeTodoDeleted = "TodoDeleted"
)

// TodoEvent describes a mutation of a todo item. Events are published
// best-effort after the write succeeds; consumers must tolerate loss.
type TodoEvent struct {
	EventID    string `json:"eventId"`
	EventType  string `json:"eventType"`
	UserID     string `json:"userId"`
	TodoID     string `json:"todoId"`
	OccurredAt string `json:"occurredAt"`
}

// NewTodoCreated builds a TodoCreated event.
func NewTodoCreated(userID, todoID string) TodoEvent {
	return newTodoEvent(TypeTodoCreated, userID, todoID)
}

// NewTodoDeleted builds a TodoDeleted event.
func NewTodoDeleted(userID, todoID string) TodoEvent {
	return newTodoEvent(TypeTodoDeleted, userID, todoID)
}

func newTodoEvent(eventType, userID, todoID string) TodoEvent {
	return TodoEvent{
		EventID:    uuid.New().String(),
		EventType:  eventType,
		UserID:     userID,
		TodoID:     todoID,
		OccurredAt: time.Now().Format(time.RFC3339),
	}
}
