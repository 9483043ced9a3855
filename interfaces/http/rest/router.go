package rest

import (
	"net/http"

	"todo-backend/application/ports"
	"todo-backend/interfaces/http/rest/handlers"
	"todo-backend/interfaces/http/rest/middleware"
	"todo-backend/pkg/auth"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	service    ports.TodoService
	validator  *auth.JWTValidator
	logger     *zap.Logger
	enableCORS bool
}

// NewRouter creates a new router instance
func NewRouter(
	service ports.TodoService,
	validator *auth.JWTValidator,
	logger *zap.Logger,
	enableCORS bool,
) *Router {
	return &Router{
		service:    service,
		validator:  validator,
		logger:     logger,
		enableCORS: enableCORS,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	// CORS configuration
	if rt.enableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	// Todo endpoints
	router.Route("/todos", func(r chi.Router) {
		r.Use(middleware.Authenticate(rt.validator))

		todoHandler := handlers.NewTodoHandler(rt.service, rt.logger)
		r.Get("/", todoHandler.ListTodos)
		r.Get("/public", todoHandler.ListPublicTodos)
		r.Post("/", todoHandler.CreateTodo)
		r.Get("/{todoID}", todoHandler.GetTodo)
		r.Patch("/{todoID}", todoHandler.UpdateTodo)
		r.Delete("/{todoID}", todoHandler.DeleteTodo)
		r.Post("/{todoID}/attachment", todoHandler.RequestAttachmentUpload)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
