// Package tasks provides owner-scoped task persistence. Every lookup and
// mutation filters by both task id and owner id in the same store operation,
// so "absent" and "owned by someone else" are indistinguishable at this
// layer: both are common.ErrorNotFound.
package tasks

import (
	"context"

	"github.com/mbelyaev/taskkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	GetByOwner(ctx context.Context, id, ownerID string) (*models.Task, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Task, error)
	UpdateTitle(ctx context.Context, id, ownerID, title string) error
	ToggleCompleted(ctx context.Context, id, ownerID string) (*models.Task, error)
	Delete(ctx context.Context, id, ownerID string) error
}
