package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"todo-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-middleware"

func newTestValidator(t *testing.T) *auth.JWTValidator {
	t.Helper()
	validator, err := auth.NewJWTValidator(auth.JWTConfig{
		SecretKey: testSecret,
	})
	require.NoError(t, err)
	return validator
}

func mintToken(t *testing.T, secret string, expiry time.Duration) string {
	t.Helper()
	generator, err := auth.NewJWTGenerator(auth.JWTGeneratorConfig{
		SecretKey:  secret,
		ExpiryTime: expiry,
	})
	require.NoError(t, err)

	token, err := generator.GenerateToken("user-123", "user@example.com", []string{"authenticated"})
	require.NoError(t, err)
	return token
}

// echoUserHandler writes the authenticated user ID so tests can verify the
// identity was placed in the request context.
func echoUserHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userCtx, err := auth.GetUserFromContext(r.Context())
		require.NoError(t, err)
		w.Write([]byte(userCtx.UserID))
	})
}

func TestAuthenticate_ValidToken(t *testing.T) {
	handler := Authenticate(newTestValidator(t))(echoUserHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, testSecret, time.Hour))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-123", rec.Body.String())
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	handler := Authenticate(newTestValidator(t))(echoUserHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing authorization header")
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	handler := Authenticate(newTestValidator(t))(echoUserHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	req.Header.Set("Authorization", "Token abc123")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	handler := Authenticate(newTestValidator(t))(echoUserHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, testSecret, -time.Hour))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token has expired")
}

func TestAuthenticate_WrongSignature(t *testing.T) {
	handler := Authenticate(newTestValidator(t))(echoUserHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, "a-different-secret-entirely", time.Hour))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token signature")
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	handler := Authenticate(newTestValidator(t))(echoUserHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
}
