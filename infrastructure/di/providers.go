package di

import (
	"context"
	"time"

	"todo-backend/application/ports"
	"todo-backend/application/services"
	"todo-backend/infrastructure/config"
	"todo-backend/infrastructure/messaging/eventbridge"
	dynamorepo "todo-backend/infrastructure/persistence/dynamodb"
	s3storage "todo-backend/infrastructure/storage/s3"
	"todo-backend/pkg/auth"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client. When IS_OFFLINE is set
// the client points at the local development endpoint.
func ProvideDynamoDBClient(awsCfg aws.Config, cfg *config.Config) *awsdynamodb.Client {
	if cfg.IsOffline {
		return awsdynamodb.NewFromConfig(awsCfg, func(o *awsdynamodb.Options) {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		})
	}
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideS3Client creates an S3 client
func ProvideS3Client(awsCfg aws.Config) *awss3.Client {
	return awss3.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideTodoRepository creates a todo repository
func ProvideTodoRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.TodoRepository {
	return dynamorepo.NewTodoRepository(
		client,
		cfg.TodosTable,
		cfg.CreatedAtIndex,
		cfg.PublicIndex,
		cfg.AttachmentBucket,
		logger,
	)
}

// ProvideAttachmentSigner creates an attachment signer
func ProvideAttachmentSigner(client *awss3.Client, cfg *config.Config, logger *zap.Logger) ports.AttachmentSigner {
	return s3storage.NewAttachmentSigner(
		client,
		cfg.AttachmentBucket,
		time.Duration(cfg.SignedURLExpiration)*time.Second,
		logger,
	)
}

// ProvideEventPublisher creates an event publisher
func ProvideEventPublisher(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventPublisher {
	return eventbridge.NewEventBridgePublisher(
		client,
		cfg.EventBusName,
		logger,
	)
}

// ProvideTodoService creates the todo service
func ProvideTodoService(
	repo ports.TodoRepository,
	signer ports.AttachmentSigner,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) ports.TodoService {
	return services.NewTodoService(repo, signer, publisher, logger)
}

// ProvideJWTValidator creates the bearer-token validator. In development a
// fallback secret is used so the server can start without configuration.
func ProvideJWTValidator(cfg *config.Config) (*auth.JWTValidator, error) {
	secret := cfg.JWTSecret
	if secret == "" && !cfg.IsProduction() {
		secret = "development-secret-change-in-production"
	}
	return auth.NewJWTValidator(auth.JWTConfig{
		SigningMethod: "HS256",
		SecretKey:     secret,
		Issuer:        cfg.JWTIssuer,
	})
}
