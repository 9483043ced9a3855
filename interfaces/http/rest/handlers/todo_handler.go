package handlers

import (
	"encoding/json"
	"net/http"

	"todo-backend/application/ports"
	"todo-backend/domain/todo"
	"todo-backend/pkg/auth"
	apperrors "todo-backend/pkg/errors"
	"todo-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// TodoHandler handles todo-related HTTP requests
type TodoHandler struct {
	service ports.TodoService
	logger  *zap.Logger
}

// NewTodoHandler creates a new todo handler
func NewTodoHandler(service ports.TodoService, logger *zap.Logger) *TodoHandler {
	return &TodoHandler{
		service: service,
		logger:  logger,
	}
}

// ListTodos handles GET /todos
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	items, err := h.service.ListForOwner(r.Context(), userCtx.UserID)
	if err != nil {
		h.logger.Error("Failed to list todos",
			zap.String("userID", userCtx.UserID),
			zap.Error(err),
		)
		h.respondAppError(w, err, "Failed to list todos")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

// ListPublicTodos handles GET /todos/public
func (h *TodoHandler) ListPublicTodos(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	items, err := h.service.ListPublic(r.Context(), userCtx.UserID)
	if err != nil {
		h.logger.Error("Failed to list public todos", zap.Error(err))
		h.respondAppError(w, err, "Failed to list public todos")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

// GetTodo handles GET /todos/{todoID}
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	todoID := chi.URLParam(r, "todoID")
	if todoID == "" {
		h.respondError(w, http.StatusBadRequest, "Todo ID is required")
		return
	}

	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	item, err := h.service.GetOne(r.Context(), userCtx.UserID, todoID)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			h.logger.Error("Failed to get todo",
				zap.String("todoID", todoID),
				zap.String("userID", userCtx.UserID),
				zap.Error(err),
			)
		}
		h.respondAppError(w, err, "Failed to retrieve todo")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{"item": item})
}

// CreateTodo handles POST /todos
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req todo.CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	item, err := h.service.Create(r.Context(), req, userCtx.UserID)
	if err != nil {
		h.logger.Error("Failed to create todo",
			zap.String("userID", userCtx.UserID),
			zap.Error(err),
		)
		h.respondAppError(w, err, "Failed to create todo")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{"item": item})
}

// UpdateTodo handles PATCH /todos/{todoID}
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	todoID := chi.URLParam(r, "todoID")
	if todoID == "" {
		h.respondError(w, http.StatusBadRequest, "Todo ID is required")
		return
	}

	var req todo.UpdateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	upd, err := h.service.Update(r.Context(), req, userCtx.UserID, todoID)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			h.logger.Error("Failed to update todo",
				zap.String("todoID", todoID),
				zap.String("userID", userCtx.UserID),
				zap.Error(err),
			)
		}
		h.respondAppError(w, err, "Failed to update todo")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{"item": upd})
}

// DeleteTodo handles DELETE /todos/{todoID}
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	todoID := chi.URLParam(r, "todoID")
	if todoID == "" {
		h.respondError(w, http.StatusBadRequest, "Todo ID is required")
		return
	}

	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.Delete(r.Context(), userCtx.UserID, todoID); err != nil {
		if !apperrors.IsNotFound(err) {
			h.logger.Error("Failed to delete todo",
				zap.String("todoID", todoID),
				zap.String("userID", userCtx.UserID),
				zap.Error(err),
			)
		}
		h.respondAppError(w, err, "Failed to delete todo")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"todoId": todoID})
}

// RequestAttachmentUpload handles POST /todos/{todoID}/attachment
func (h *TodoHandler) RequestAttachmentUpload(w http.ResponseWriter, r *http.Request) {
	todoID := chi.URLParam(r, "todoID")
	if todoID == "" {
		h.respondError(w, http.StatusBadRequest, "Todo ID is required")
		return
	}

	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	uploadURL, err := h.service.RequestAttachmentUpload(r.Context(), userCtx.UserID, todoID)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			h.logger.Error("Failed to issue attachment upload URL",
				zap.String("todoID", todoID),
				zap.String("userID", userCtx.UserID),
				zap.Error(err),
			)
		}
		h.respondAppError(w, err, "Failed to issue upload URL")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]string{"uploadUrl": uploadURL})
}

// Helper methods

func (h *TodoHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *TodoHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]interface{}{
		"error":   true,
		"message": message,
		"code":    status,
	})
}

// respondAppError maps an application error onto its HTTP status. Errors
// without a status become a 500 with the fallback message.
func (h *TodoHandler) respondAppError(w http.ResponseWriter, err error, fallback string) {
	if appErr := apperrors.GetAppError(err); appErr != nil && appErr.HTTPStatus != 0 {
		h.respondError(w, appErr.HTTPStatus, appErr.Message)
		return
	}
	h.respondError(w, http.StatusInternalServerError, fallback)
}
