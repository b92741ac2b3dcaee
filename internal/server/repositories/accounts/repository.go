// Package accounts provides the credential store: durable mapping from a
// unique, case-insensitively normalized email to an account and its
// password hash.
package accounts

import (
	"context"

	"github.com/mbelyaev/taskkeeper/internal/server/models"
)

// Repository is the credential store contract.
//
// Create must perform the duplicate-email check and the insert as one atomic
// operation backed by the store's uniqueness mechanism; implementations
// return common.ErrorEmailExists when the normalized email is already taken
// and must never pre-probe with a separate lookup.
type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
}
