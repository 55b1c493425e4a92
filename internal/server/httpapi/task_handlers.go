package httpapi

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mpetrenko/userhub/internal/server/models"
)

type taskRequest struct {
	Title string `json:"title"`
}

type taskResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
}

func toTaskResponse(t *models.Task) taskResponse {
	return taskResponse{ID: t.ID, Title: t.Title, Done: t.Done, CreatedAt: t.CreatedAt}
}

func (s *Server) handleListTasks(c *fiber.Ctx) error {
	list, err := s.tasks.ListOwned(c.UserContext(), authenticatedUserID(c))
	if err != nil {
		return err
	}

	tasks := make([]taskResponse, 0, len(list))
	for _, t := range list {
		tasks = append(tasks, toTaskResponse(t))
	}

	return c.JSON(fiber.Map{"tasks": tasks})
}

func (s *Server) handleCreateTask(c *fiber.Ctx) error {
	var body taskRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if strings.TrimSpace(body.Title) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "title required")
	}

	task, err := s.tasks.Create(c.UserContext(), authenticatedUserID(c), body.Title)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(toTaskResponse(task))
}

func (s *Server) handleGetTask(c *fiber.Ctx) error {
	id, err := parseTaskID(c)
	if err != nil {
		return err
	}

	task, err := s.tasks.Get(c.UserContext(), authenticatedUserID(c), id)
	if err != nil {
		return err
	}

	return c.JSON(toTaskResponse(task))
}

func (s *Server) handleDeleteTask(c *fiber.Ctx) error {
	id, err := parseTaskID(c)
	if err != nil {
		return err
	}

	if err := s.tasks.Delete(c.UserContext(), authenticatedUserID(c), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func parseTaskID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid task id")
	}
	return id, nil
}
