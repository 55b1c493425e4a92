// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, token minting, and user
// record management.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/mpetrenko/userhub/internal/common"
	"github.com/mpetrenko/userhub/internal/dbx"
	"github.com/mpetrenko/userhub/internal/server/auth"
	"github.com/mpetrenko/userhub/internal/server/models"
	"github.com/mpetrenko/userhub/internal/server/repositories/repomanager"
)

// UserService provides user-registry operations:
//   - Register/Create: create users with a hashed secret
//   - Login: verify credentials and mint a bearer token
//   - List/Get/Update/Delete: record management
type UserService struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	tokens *auth.TokenService
}

// NewUserService constructs a UserService using repositories and the token
// issuer.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, tokens *auth.TokenService) *UserService {
	return &UserService{
		db:     db,
		repos:  m,
		tokens: tokens,
	}
}

// Register creates a new user. The raw secret is hashed before it reaches
// the repository and is never stored or logged.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	var created *models.User
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Users(tx)
		u, txErr := repo.Create(ctx, &models.User{Username: username, Email: email, PasswordHash: hash})
		if txErr != nil {
			return txErr
		}
		created = u
		return nil
	}); err != nil {
		return nil, err
	}

	return created, nil
}

// Login verifies the provided credentials and, on success, returns a signed
// bearer token for the user. Unknown usernames and wrong passwords collapse
// into the same common.ErrUnauthorized.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	repo := s.repos.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrUnauthorized
		}
		return "", err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", common.ErrUnauthorized
	}

	return s.tokens.Issue(strconv.FormatInt(user.ID, 10), time.Now())
}

// List returns a stable page of users ordered by identifier ascending.
func (s *UserService) List(ctx context.Context, offset, limit int) ([]*models.User, error) {
	repo := s.repos.Users(s.db)
	return repo.List(ctx, offset, limit)
}

// Get returns the user with the given identifier.
func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	repo := s.repos.Users(s.db)
	return repo.GetByID(ctx, id)
}

// Update replaces the username, email, and password of the user. Full-replace
// semantics: all three fields are mandatory on every call.
func (s *UserService) Update(ctx context.Context, id int64, username, email, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	var updated *models.User
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Users(tx)
		u, txErr := repo.Update(ctx, &models.User{ID: id, Username: username, Email: email, PasswordHash: hash})
		if txErr != nil {
			return txErr
		}
		updated = u
		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes the user permanently. A second delete of the same id yields
// common.ErrNotFound.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Users(tx)
		return repo.Delete(ctx, id)
	})
}
