package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable LoadConfig reads so tests start from the
// documented defaults regardless of the host environment.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_ADDRESS", "ENVIRONMENT", "AWS_REGION",
		"TABLE_NAME", "TODOS_TABLE", "CREATED_AT_INDEX", "PUBLIC_INDEX",
		"EVENT_BUS_NAME", "ATTACHMENT_S3_BUCKET", "SIGNED_URL_EXPIRATION",
		"IS_OFFLINE", "DYNAMODB_ENDPOINT", "AWS_LAMBDA_FUNCTION_NAME",
		"JWT_SECRET", "JWT_ISSUER", "LOG_LEVEL", "ENABLE_CORS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "todos", cfg.TodosTable)
	assert.Equal(t, "CreatedAtIndex", cfg.CreatedAtIndex)
	assert.Equal(t, "PublicIndex", cfg.PublicIndex)
	assert.Equal(t, "todo-events", cfg.EventBusName)
	assert.Equal(t, 300, cfg.SignedURLExpiration)
	assert.False(t, cfg.IsOffline)
	assert.False(t, cfg.IsLambda)
	assert.True(t, cfg.EnableCORS)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TABLE_NAME", "Todos-prod")
	t.Setenv("ATTACHMENT_S3_BUCKET", "todo-attachments-prod")
	t.Setenv("SIGNED_URL_EXPIRATION", "600")
	t.Setenv("IS_OFFLINE", "true")
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8001")
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "todo-api")
	t.Setenv("ENABLE_CORS", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "Todos-prod", cfg.TodosTable)
	assert.Equal(t, "todo-attachments-prod", cfg.AttachmentBucket)
	assert.Equal(t, 600, cfg.SignedURLExpiration)
	assert.True(t, cfg.IsOffline)
	assert.Equal(t, "http://localhost:8001", cfg.DynamoDBEndpoint)
	assert.True(t, cfg.IsLambda)
	assert.False(t, cfg.EnableCORS)
}

func TestLoadConfig_TodosTableFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("TODOS_TABLE", "legacy-todos")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "legacy-todos", cfg.TodosTable)
}

func TestLoadConfig_ProductionValidation(t *testing.T) {
	t.Run("missing jwt secret", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("ATTACHMENT_S3_BUCKET", "bucket")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("missing attachment bucket", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("JWT_SECRET", "secret")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ATTACHMENT_S3_BUCKET")
	})

	t.Run("complete production config", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("TABLE_NAME", "Todos-prod")
		t.Setenv("ATTACHMENT_S3_BUCKET", "bucket")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.True(t, cfg.IsProduction())
	})
}

func TestLoadConfig_InvalidExpiration(t *testing.T) {
	t.Run("non-numeric falls back to default", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SIGNED_URL_EXPIRATION", "soon")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 300, cfg.SignedURLExpiration)
	})

	t.Run("non-positive is rejected", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SIGNED_URL_EXPIRATION", "0")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SIGNED_URL_EXPIRATION")
	})
}
