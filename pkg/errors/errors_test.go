package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		etype  ErrorType
		status int
	}{
		{"validation", NewValidationError("name is required"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("todo"), ErrorTypeNotFound, http.StatusNotFound},
		{"unauthorized", NewUnauthorizedError("bad token"), ErrorTypeUnauthorized, http.StatusUnauthorized},
		{"internal", NewInternalError("boom"), ErrorTypeInternal, http.StatusInternalServerError},
		{"database", NewDatabaseError("query", errors.New("timeout")), ErrorTypeDatabase, http.StatusInternalServerError},
		{"external", NewExternalError("s3", errors.New("503")), ErrorTypeExternal, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.etype, tt.err.Type)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.NotEmpty(t, tt.err.StackTrace)
		})
	}
}

func TestNotFoundError_Message(t *testing.T) {
	err := NewNotFoundError("todo")
	assert.Equal(t, "todo not found", err.Message)
	assert.Equal(t, "NOT_FOUND: todo not found", err.Error())
}

func TestUnauthorizedError_DefaultMessage(t *testing.T) {
	assert.Equal(t, "unauthorized", NewUnauthorizedError("").Message)
}

func TestError_IncludesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseError("put", cause)

	assert.Contains(t, err.Error(), "connection reset")
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestTypeChecks(t *testing.T) {
	notFound := NewNotFoundError("todo")

	assert.True(t, IsAppError(notFound))
	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsValidation(notFound))
	assert.False(t, IsUnauthorized(notFound))

	assert.False(t, IsAppError(errors.New("plain")))
	assert.False(t, IsNotFound(nil))
}

func TestTypeChecks_WrappedChain(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewNotFoundError("todo"))

	assert.True(t, IsNotFound(wrapped))
	require.NotNil(t, GetAppError(wrapped))
	assert.Equal(t, http.StatusNotFound, GetAppError(wrapped).HTTPStatus)
}

func TestGetAppError_NonAppError(t *testing.T) {
	assert.Nil(t, GetAppError(errors.New("plain")))
	assert.Nil(t, GetAppError(nil))
}

func TestWrap(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "context"))
	})

	t.Run("app error keeps its type and gains context", func(t *testing.T) {
		err := Wrap(NewNotFoundError("todo"), "deleting")
		assert.True(t, IsNotFound(err))
		assert.Contains(t, err.Error(), "deleting: todo not found")
	})

	t.Run("plain error becomes internal", func(t *testing.T) {
		cause := errors.New("disk full")
		err := Wrap(cause, "saving")

		appErr := GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, ErrorTypeInternal, appErr.Type)
		assert.Equal(t, cause, errors.Unwrap(err))
	})
}

func TestWithCodeAndDetails(t *testing.T) {
	err := NewValidationError("bad input").
		WithCode("TODO_001").
		WithDetails(map[string]interface{}{"field": "name"})

	assert.Equal(t, "TODO_001", err.Code)
	assert.Equal(t, "name", err.Details["field"])
}
