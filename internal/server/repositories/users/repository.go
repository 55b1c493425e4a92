package users

import (
	"context"

	"github.com/mpetrenko/userhub/internal/server/models"
)

// Repository is the CRUD surface over the users table. Every implementation
// is bound to a single dbx.DBTX handle, so the same code runs against the
// shared pool or inside a request's transaction.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	List(ctx context.Context, offset, limit int) ([]*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}
