// Package httpapi is the HTTP endpoint layer of the registry. It translates
// requests into service calls and service errors into status codes, keeping
// all business rules in the services package.
package httpapi

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mpetrenko/userhub/internal/common"
	"github.com/mpetrenko/userhub/internal/logging"
	"github.com/mpetrenko/userhub/internal/server/auth"
	"github.com/mpetrenko/userhub/internal/server/services"
)

// Server wires the fiber application to the user and task services.
type Server struct {
	app    *fiber.App
	addr   string
	users  *services.UserService
	tasks  *services.TaskService
	tokens *auth.TokenService
	logger logging.Logger
}

func NewServer(addr string, users *services.UserService, tasks *services.TaskService, tokens *auth.TokenService, logger logging.Logger) *Server {
	s := &Server{
		addr:   addr,
		users:  users,
		tasks:  tasks,
		tokens: tokens,
		logger: logger,
	}

	s.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          s.errorHandler,
	})

	s.app.Use(s.requestLogger())
	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	s.app.Post("/register", s.handleRegister)
	s.app.Post("/login", s.handleLogin)

	s.app.Post("/users", s.handleCreateUser)
	s.app.Get("/users", s.handleListUsers)
	s.app.Get("/users/:id", s.handleGetUser)
	s.app.Put("/users/:id", s.handleUpdateUser)
	s.app.Delete("/users/:id", s.handleDeleteUser)

	tasks := s.app.Group("/tasks", s.requireAuth)
	tasks.Get("/", s.handleListTasks)
	tasks.Post("/", s.handleCreateTask)
	tasks.Get("/:id", s.handleGetTask)
	tasks.Delete("/:id", s.handleDeleteTask)
}

// App exposes the fiber application for in-process request tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listen(s.addr)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info(ctx, "shutting down http server")
		return s.app.Shutdown()
	case err := <-errCh:
		return err
	}
}

// errorHandler is the single place where service errors become status codes.
// Raw error text from the storage layer never reaches the client.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	case errors.Is(err, common.ErrConflict):
		code = fiber.StatusBadRequest
		message = "username or email already registered"
	case errors.Is(err, common.ErrNotFound):
		code = fiber.StatusNotFound
		message = "not found"
	case errors.Is(err, common.ErrUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		code = fiber.StatusUnauthorized
		message = "unauthorized"
	case errors.Is(err, common.ErrForbidden):
		code = fiber.StatusForbidden
		message = "forbidden"
	}

	if code == fiber.StatusInternalServerError {
		s.logger.Error(c.UserContext(), "request failed", "method", c.Method(), "path", c.Path(), "error", err.Error())
	}

	return c.Status(code).JSON(fiber.Map{"error": message})
}
