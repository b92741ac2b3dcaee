package accounts

import (
	"context"
	"strings"
	"sync"

	"github.com/mbelyaev/taskkeeper/internal/common"
	"github.com/mbelyaev/taskkeeper/internal/server/models"
)

// MemoryRepository is an in-memory credential store for development and
// tests. The existence check and the insert happen under one mutex hold, so
// concurrent registrations with the same email have exactly one winner, same
// as the unique index gives the Postgres implementation.
type MemoryRepository struct {
	mu      sync.Mutex
	byEmail map[string]*models.Account
	byID    map[string]*models.Account
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byEmail: make(map[string]*models.Account),
		byID:    make(map[string]*models.Account),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	key := strings.ToLower(account.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[key]; ok {
		return nil, common.ErrorEmailExists
	}

	stored := *account
	r.byEmail[key] = &stored
	r.byID[stored.ID] = &stored

	return account, nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, common.ErrorNotFound
	}

	copy := *account
	return &copy, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	copy := *account
	return &copy, nil
}
