package tasks

import (
	"context"
	"sort"
	"sync"

	"github.com/mbelyaev/taskkeeper/internal/common"
	"github.com/mbelyaev/taskkeeper/internal/server/models"
)

// MemoryRepository is an in-memory task store for development and tests,
// with the same owner-scoped semantics as the Postgres implementation.
type MemoryRepository struct {
	mu    sync.Mutex
	tasks map[string]*models.Task
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{tasks: make(map[string]*models.Task)}
}

func (r *MemoryRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *task
	r.tasks[stored.ID] = &stored

	return task, nil
}

func (r *MemoryRepository) GetByOwner(ctx context.Context, id, ownerID string) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return nil, common.ErrorNotFound
	}

	copy := *task
	return &copy, nil
}

func (r *MemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*models.Task
	for _, task := range r.tasks {
		if task.OwnerID != ownerID {
			continue
		}
		copy := *task
		result = append(result, &copy)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

func (r *MemoryRepository) UpdateTitle(ctx context.Context, id, ownerID, title string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return common.ErrorNotFound
	}

	task.Title = title
	return nil
}

func (r *MemoryRepository) ToggleCompleted(ctx context.Context, id, ownerID string) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return nil, common.ErrorNotFound
	}

	task.Completed = !task.Completed
	copy := *task
	return &copy, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return common.ErrorNotFound
	}

	delete(r.tasks, id)
	return nil
}
