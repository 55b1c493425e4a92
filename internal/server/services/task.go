package services

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/mpetrenko/userhub/internal/common"
	"github.com/mpetrenko/userhub/internal/dbx"
	"github.com/mpetrenko/userhub/internal/server/models"
	"github.com/mpetrenko/userhub/internal/server/repositories/repomanager"
)

// TaskService manages tasks, the per-user resource of the registry.
// Ownership is enforced here: a caller only ever sees or deletes tasks whose
// UserID matches the authenticated subject.
type TaskService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repos: m}
}

// Create stores a new task owned by userID.
func (s *TaskService) Create(ctx context.Context, userID int64, title string) (*models.Task, error) {
	var created *models.Task
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Tasks(tx)
		task, txErr := repo.Create(ctx, &models.Task{UserID: userID, Title: title})
		if txErr != nil {
			return txErr
		}
		created = task
		return nil
	}); err != nil {
		return nil, err
	}

	return created, nil
}

// ListOwned returns the tasks owned by userID.
func (s *TaskService) ListOwned(ctx context.Context, userID int64) ([]*models.Task, error) {
	repo := s.repos.Tasks(s.db)
	return repo.ListByUser(ctx, userID)
}

// Get returns the task with the given id, failing with common.ErrForbidden
// when it exists but belongs to another user.
func (s *TaskService) Get(ctx context.Context, userID int64, id uuid.UUID) (*models.Task, error) {
	repo := s.repos.Tasks(s.db)

	task, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.UserID != userID {
		return nil, common.ErrForbidden
	}

	return task, nil
}

// Delete removes the task after the ownership check. The read and the delete
// share one transaction so the check cannot race a concurrent owner change.
func (s *TaskService) Delete(ctx context.Context, userID int64, id uuid.UUID) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Tasks(tx)

		task, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if task.UserID != userID {
			return common.ErrForbidden
		}

		return repo.Delete(ctx, id)
	})
}
