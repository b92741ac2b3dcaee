package services

import (
	"context"
	"errors"
	"testing"

	"github.com/mbelyaev/taskkeeper/internal/common"
	"github.com/mbelyaev/taskkeeper/internal/server/repositories/repomanager"
)

func newTaskService() *TaskService {
	return NewTaskService(nil, repomanager.NewMemoryRepositoryManager())
}

func TestAssertOwnership_OtherOwnerIsNotFound(t *testing.T) {
	s := newTaskService()
	ctx := context.Background()

	task, err := s.Create(ctx, "account-a", "buy milk")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// Account B probing account A's task must look identical to probing a
	// task that does not exist at all.
	_, errForeign := s.AssertOwnership(ctx, task.ID, "account-b")
	_, errMissing := s.AssertOwnership(ctx, "no-such-task", "account-b")

	if !errors.Is(errForeign, common.ErrorNotFound) {
		t.Fatalf("foreign task: expected common.ErrorNotFound, got %v", errForeign)
	}
	if !errors.Is(errMissing, common.ErrorNotFound) {
		t.Fatalf("missing task: expected common.ErrorNotFound, got %v", errMissing)
	}
}

func TestAssertOwnership_OwnerResolvesTask(t *testing.T) {
	s := newTaskService()
	ctx := context.Background()

	task, err := s.Create(ctx, "account-a", "buy milk")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := s.AssertOwnership(ctx, task.ID, "account-a")
	if err != nil {
		t.Fatalf("AssertOwnership error: %v", err)
	}
	if got.Title != "buy milk" || got.OwnerID != "account-a" {
		t.Fatalf("unexpected task: %+v", got)
	}
}

func TestToggleCompleted_FlipsBothWays(t *testing.T) {
	s := newTaskService()
	ctx := context.Background()

	task, err := s.Create(ctx, "account-a", "t")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	on, err := s.ToggleCompleted(ctx, task.ID, "account-a")
	if err != nil {
		t.Fatalf("ToggleCompleted error: %v", err)
	}
	if !on.Completed {
		t.Fatalf("expected completed=true after first toggle")
	}

	off, err := s.ToggleCompleted(ctx, task.ID, "account-a")
	if err != nil {
		t.Fatalf("ToggleCompleted error: %v", err)
	}
	if off.Completed {
		t.Fatalf("expected completed=false after second toggle")
	}
}

func TestToggleCompleted_OtherOwnerIsNotFound(t *testing.T) {
	s := newTaskService()
	ctx := context.Background()

	task, err := s.Create(ctx, "account-a", "t")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	_, err = s.ToggleCompleted(ctx, task.ID, "account-b")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestUpdateTitle_AndList(t *testing.T) {
	s := newTaskService()
	ctx := context.Background()

	task, err := s.Create(ctx, "account-a", "old")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	updated, err := s.UpdateTitle(ctx, task.ID, "account-a", "new")
	if err != nil {
		t.Fatalf("UpdateTitle error: %v", err)
	}
	if updated.Title != "new" {
		t.Fatalf("expected renamed task, got %+v", updated)
	}

	list, err := s.List(ctx, "account-a")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 1 || list[0].Title != "new" {
		t.Fatalf("unexpected list: %+v", list)
	}

	other, err := s.List(ctx, "account-b")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("account-b must not see account-a tasks: %+v", other)
	}
}

func TestDelete_OtherOwnerIsNotFound(t *testing.T) {
	s := newTaskService()
	ctx := context.Background()

	task, err := s.Create(ctx, "account-a", "t")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := s.Delete(ctx, task.ID, "account-b"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}

	// Still there for the real owner.
	if _, err := s.AssertOwnership(ctx, task.ID, "account-a"); err != nil {
		t.Fatalf("task must survive a foreign delete attempt: %v", err)
	}

	if err := s.Delete(ctx, task.ID, "account-a"); err != nil {
		t.Fatalf("owner delete error: %v", err)
	}
	if _, err := s.AssertOwnership(ctx, task.ID, "account-a"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound after delete, got %v", err)
	}
}
