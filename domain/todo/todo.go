// Package todo defines the todo item model shared by the service,
// persistence, and HTTP layers.
package todo

// TodoItem represents one user goal. The (UserID, TodoID) pair is the sole
// addressing key; both fields are immutable after creation, as is CreatedAt.
type TodoItem struct {
	UserID        string `json:"userId"`
	TodoID        string `json:"todoId"`
	Name          string `json:"name"`
	DueDate       string `json:"dueDate"`
	Done          bool   `json:"done"`
	CreatedAt     string `json:"createdAt"`
	IsPublic      bool   `json:"isPublic"`
	AttachmentURL string `json:"attachmentUrl,omitempty"`
}

// PublicTodoItem is the safe projection returned by the public listing.
// It must never carry the owner identifier or any mutable attribute.
type PublicTodoItem struct {
	TodoID        string `json:"todoId"`
	Name          string `json:"name"`
	CreatedAt     string `json:"createdAt"`
	AttachmentURL string `json:"attachmentUrl,omitempty"`
}

// TodoUpdate carries the full set of mutable attributes for a replace-style
// update.
type TodoUpdate struct {
	Name     string `json:"name"`
	DueDate  string `json:"dueDate"`
	Done     bool   `json:"done"`
	IsPublic bool   `json:"isPublic"`
}

// CreateTodoRequest is the payload for creating a todo item.
type CreateTodoRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	DueDate string `json:"dueDate" validate:"required"`
}

// UpdateTodoRequest is the payload for updating a todo item. All mutable
// fields are replaced; omitting one resets it to its zero value.
type UpdateTodoRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	DueDate  string `json:"dueDate" validate:"required"`
	Done     bool   `json:"done"`
	IsPublic bool   `json:"isPublic"`
}
