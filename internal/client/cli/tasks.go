package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mbelyaev/taskkeeper/internal/common"
)

func (a *App) list(ctx context.Context) {

	tasks, err := a.api.ListTasks(ctx)
	if err != nil {
		a.printTaskError(err)
		return
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks yet")
		return
	}

	for _, t := range tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		fmt.Printf("[%s] %s  %s\n", mark, t.ID, t.Title)
	}
}

func (a *App) add(ctx context.Context, title string) {

	if title == "" {
		var err error
		title, err = GetSimpleText(a.reader, "Enter task title", os.Stdout)
		if err != nil {
			fmt.Println(err.Error())
			return
		}
	}

	task, err := a.api.CreateTask(ctx, title)
	if err != nil {
		a.printTaskError(err)
		return
	}

	fmt.Println("Added", task.ID)
}

func (a *App) rename(ctx context.Context, id, title string) {

	task, err := a.api.UpdateTask(ctx, id, title)
	if err != nil {
		a.printTaskError(err)
		return
	}

	fmt.Println("Renamed", task.ID)
}

func (a *App) done(ctx context.Context, id string) {

	task, err := a.api.ToggleTask(ctx, id)
	if err != nil {
		a.printTaskError(err)
		return
	}

	if task.Completed {
		fmt.Println("Completed", task.ID)
	} else {
		fmt.Println("Reopened", task.ID)
	}
}

func (a *App) remove(ctx context.Context, id string) {

	if err := a.api.DeleteTask(ctx, id); err != nil {
		a.printTaskError(err)
		return
	}

	fmt.Println("Deleted", id)
}

func (a *App) printTaskError(err error) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		fmt.Println("Task not found")
	case errors.Is(err, common.ErrorUnauthorized):
		fmt.Println("Not logged in")
	default:
		fmt.Println(err.Error())
	}
}
