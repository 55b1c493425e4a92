package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mpetrenko/userhub/internal/common"
	"github.com/mpetrenko/userhub/internal/dbx"
	"github.com/mpetrenko/userhub/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}

	query :=
		`INSERT INTO tasks (id, user_id, title, done)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		task.ID, task.UserID, task.Title, task.Done).Scan(&task.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w: %v", common.ErrStoreUnavailable, err)
	}

	return task, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Task, error) {
	query :=
		`SELECT id, user_id, title, done, created_at FROM tasks
		 WHERE user_id = $1
		 ORDER BY created_at, id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w: %v", common.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	result := make([]*models.Task, 0)
	for rows.Next() {
		task := &models.Task{}
		if err := rows.Scan(&task.ID, &task.UserID, &task.Title, &task.Done, &task.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w: %v", common.ErrStoreUnavailable, err)
		}
		result = append(result, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w: %v", common.ErrStoreUnavailable, err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	query :=
		`SELECT id, user_id, title, done, created_at FROM tasks
		 WHERE id = $1
		 `

	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&task.ID, &task.UserID, &task.Title, &task.Done, &task.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w: %v", common.ErrStoreUnavailable, err)
	}

	return task, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w: %v", common.ErrStoreUnavailable, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w: %v", common.ErrStoreUnavailable, err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	return nil
}
