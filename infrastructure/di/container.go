package di

import (
	"todo-backend/application/ports"
	"todo-backend/infrastructure/config"
	"todo-backend/pkg/auth"

	"go.uber.org/zap"
)

// Container holds all application dependencies. It is constructed once per
// process and passed by reference; there are no module-level singletons.
type Container struct {
	Config         *config.Config
	Logger         *zap.Logger
	TodoRepo       ports.TodoRepository
	Signer         ports.AttachmentSigner
	EventPublisher ports.EventPublisher
	TodoService    ports.TodoService
	JWTValidator   *auth.JWTValidator
}
