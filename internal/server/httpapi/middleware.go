package httpapi

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mpetrenko/userhub/internal/common"
)

const localsUserID = "userID"

// requireAuth guards the task routes. It accepts only a well-formed
// "Bearer <token>" header whose token verifies against the current clock and
// names an existing user. Everything else is a 401.
func (s *Server) requireAuth(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return common.ErrUnauthorized
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return common.ErrUnauthorized
	}

	subject, err := s.tokens.Verify(parts[1], time.Now())
	if err != nil {
		return err
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return common.ErrInvalidToken
	}

	// A valid token for a since-deleted user does not grant access.
	if _, err := s.users.Get(c.UserContext(), userID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrUnauthorized
		}
		return err
	}

	c.Locals(localsUserID, userID)
	return c.Next()
}

func (s *Server) requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		s.logger.Debug(c.UserContext(), "request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start).String(),
		)
		return err
	}
}

// authenticatedUserID returns the subject stored by requireAuth.
func authenticatedUserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(localsUserID).(int64)
	return id
}
