package httpapi

import (
	"net/mail"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mpetrenko/userhub/internal/server/models"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

type userRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, Email: u.Email}
}

func (r *userRequest) validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "username required")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid email")
	}
	if r.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "password required")
	}
	return nil
}

func (s *Server) handleRegister(c *fiber.Ctx) error {
	return s.handleCreateUser(c)
}

func (s *Server) handleCreateUser(c *fiber.Ctx) error {
	var body userRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := body.validate(); err != nil {
		return err
	}

	user, err := s.users.Register(c.UserContext(), body.Username, body.Email, body.Password)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(toUserResponse(user))
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	token, err := s.users.Login(c.UserContext(), body.Username, body.Password)
	if err != nil {
		return err
	}

	return c.JSON(tokenResponse{Token: token})
}

func (s *Server) handleListUsers(c *fiber.Ctx) error {
	skip, err := parseQueryInt(c, "skip", 0)
	if err != nil {
		return err
	}
	limit, err := parseQueryInt(c, "limit", defaultListLimit)
	if err != nil {
		return err
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	list, err := s.users.List(c.UserContext(), skip, limit)
	if err != nil {
		return err
	}

	users := make([]userResponse, 0, len(list))
	for _, u := range list {
		users = append(users, toUserResponse(u))
	}

	return c.JSON(fiber.Map{"users": users})
}

func (s *Server) handleGetUser(c *fiber.Ctx) error {
	id, err := parseUserID(c)
	if err != nil {
		return err
	}

	user, err := s.users.Get(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(toUserResponse(user))
}

func (s *Server) handleUpdateUser(c *fiber.Ctx) error {
	id, err := parseUserID(c)
	if err != nil {
		return err
	}

	var body userRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := body.validate(); err != nil {
		return err
	}

	user, err := s.users.Update(c.UserContext(), id, body.Username, body.Email, body.Password)
	if err != nil {
		return err
	}

	return c.JSON(toUserResponse(user))
}

func (s *Server) handleDeleteUser(c *fiber.Ctx) error {
	id, err := parseUserID(c)
	if err != nil {
		return err
	}

	if err := s.users.Delete(c.UserContext(), id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "user deleted"})
}

func parseUserID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}
	return id, nil
}

func parseQueryInt(c *fiber.Ctx, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return v, nil
}
