package models

import (
	"time"

	"github.com/google/uuid"
)

// Task is a user-owned resource. UserID names the owning user; ownership is
// the basis for authorization checks on protected routes.
type Task struct {
	ID        uuid.UUID
	UserID    int64
	Title     string
	Done      bool
	CreatedAt time.Time
}
