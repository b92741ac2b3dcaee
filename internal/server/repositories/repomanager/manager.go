// Package repomanager wires repositories to a database handle and runs
// schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/mbelyaev/taskkeeper/internal/dbx"
	"github.com/mbelyaev/taskkeeper/internal/server/repositories/accounts"
	"github.com/mbelyaev/taskkeeper/internal/server/repositories/tasks"
)

// RepositoryManager constructs repositories bound to the given handle, which
// may be a *sql.DB or an in-flight *sql.Tx.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Tasks(db dbx.DBTX) tasks.Repository
}
