package repomanager

import (
	"context"
	"database/sql"

	"github.com/mbelyaev/taskkeeper/internal/dbx"
	"github.com/mbelyaev/taskkeeper/internal/server/repositories/accounts"
	"github.com/mbelyaev/taskkeeper/internal/server/repositories/tasks"
)

// MemoryRepositoryManager serves the in-memory repositories regardless of
// the handle it is given; services built on it can pass a nil *sql.DB.
// Used for development mode and for tests that exercise the full stack
// without a database.
type MemoryRepositoryManager struct {
	accounts *accounts.MemoryRepository
	tasks    *tasks.MemoryRepository
}

var _ RepositoryManager = (*MemoryRepositoryManager)(nil)

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		accounts: accounts.NewMemoryRepository(),
		tasks:    tasks.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Accounts(db dbx.DBTX) accounts.Repository {
	return m.accounts
}

func (m *MemoryRepositoryManager) Tasks(db dbx.DBTX) tasks.Repository {
	return m.tasks
}

func (m *MemoryRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}
