package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mbelyaev/taskkeeper/internal/common"
	"github.com/mbelyaev/taskkeeper/internal/server/models"
	"github.com/mbelyaev/taskkeeper/internal/server/repositories/repomanager"
)

// TaskService performs task operations scoped to the authenticated owner.
// Whether a task is missing or belongs to someone else, callers see the same
// common.ErrorNotFound; the distinction never leaves the store layer.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

func (s *TaskService) Create(ctx context.Context, ownerID, title string) (*models.Task, error) {

	task := &models.Task{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Title:     title,
		Completed: false,
		CreatedAt: time.Now().UTC(),
	}

	repo := s.repomanager.Tasks(s.db)

	task, err := repo.Create(ctx, task)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return task, nil
}

func (s *TaskService) List(ctx context.Context, ownerID string) ([]*models.Task, error) {

	repo := s.repomanager.Tasks(s.db)

	tasks, err := repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return tasks, nil
}

// AssertOwnership resolves the task only if it belongs to accountID. This is
// the ownership contract resource handlers call before exposing a task.
func (s *TaskService) AssertOwnership(ctx context.Context, taskID, accountID string) (*models.Task, error) {

	repo := s.repomanager.Tasks(s.db)

	task, err := repo.GetByOwner(ctx, taskID, accountID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return task, nil
}

// UpdateTitle renames a task. The rename itself is a single owner-filtered
// statement; the read-back only builds the response.
func (s *TaskService) UpdateTitle(ctx context.Context, taskID, accountID, title string) (*models.Task, error) {

	repo := s.repomanager.Tasks(s.db)

	if err := repo.UpdateTitle(ctx, taskID, accountID, title); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return s.AssertOwnership(ctx, taskID, accountID)
}

// ToggleCompleted flips the completion flag in one atomic store operation
// and returns the updated task.
func (s *TaskService) ToggleCompleted(ctx context.Context, taskID, accountID string) (*models.Task, error) {

	repo := s.repomanager.Tasks(s.db)

	task, err := repo.ToggleCompleted(ctx, taskID, accountID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, taskID, accountID string) error {

	repo := s.repomanager.Tasks(s.db)

	if err := repo.Delete(ctx, taskID, accountID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}

	return nil
}
