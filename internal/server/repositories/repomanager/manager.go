// Package repomanager hands out repositories bound to a unit-of-work handle.
// The endpoint layer accepts the RepositoryManager interface at construction,
// so a test harness can substitute fakes without touching core logic.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/mpetrenko/userhub/internal/dbx"
	"github.com/mpetrenko/userhub/internal/server/repositories/tasks"
	"github.com/mpetrenko/userhub/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Tasks(db dbx.DBTX) tasks.Repository
}
