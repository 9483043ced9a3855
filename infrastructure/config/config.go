package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion      string
	TodosTable     string
	CreatedAtIndex string // owner + creation-time ordering
	PublicIndex    string // visibility-flag index for the public listing
	EventBusName   string

	// Attachment storage
	AttachmentBucket    string
	SignedURLExpiration int // seconds

	// Local development
	IsOffline        bool
	DynamoDBEndpoint string

	// Lambda configuration
	IsLambda bool

	// Logging
	LogLevel string

	// Authentication
	JWTSecret string
	JWTIssuer string

	// Feature flags
	EnableCORS bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		AWSRegion:     getEnv("AWS_REGION", "us-west-2"),

		TodosTable:     getEnv("TABLE_NAME", getEnv("TODOS_TABLE", "todos")),
		CreatedAtIndex: getEnv("CREATED_AT_INDEX", "CreatedAtIndex"),
		PublicIndex:    getEnv("PUBLIC_INDEX", "PublicIndex"),
		EventBusName:   getEnv("EVENT_BUS_NAME", "todo-events"),

		AttachmentBucket:    getEnv("ATTACHMENT_S3_BUCKET", ""),
		SignedURLExpiration: getEnvInt("SIGNED_URL_EXPIRATION", 300),

		IsOffline:        getEnvBool("IS_OFFLINE", false),
		DynamoDBEndpoint: getEnv("DYNAMODB_ENDPOINT", "http://localhost:8000"),

		IsLambda: os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "",

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTIssuer: getEnv("JWT_ISSUER", "todo-backend"),

		LogLevel:   getEnv("LOG_LEVEL", "info"),
		EnableCORS: getEnvBool("ENABLE_CORS", true),
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.SignedURLExpiration <= 0 {
		return fmt.Errorf("SIGNED_URL_EXPIRATION must be positive")
	}
	if c.Environment == "production" {
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		if c.TodosTable == "" {
			return fmt.Errorf("TABLE_NAME is required")
		}
		if c.AttachmentBucket == "" {
			return fmt.Errorf("ATTACHMENT_S3_BUCKET is required")
		}
	}

	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
