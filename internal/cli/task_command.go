package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"learning-tracker/internal/domain"
	"learning-tracker/internal/services"
)

// TaskCommand handles the task subcommands
type TaskCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewTaskCommand creates a new task command handler
func NewTaskCommand(app *App) *TaskCommand {
	return &TaskCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Add creates a new task from the given input
func (c *TaskCommand) Add(ctx context.Context, input services.TaskInput) error {
	task, err := c.app.services.TaskService.CreateTask(ctx, input)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	fmt.Fprintf(c.app.out, "Added task %d: %s (due %s, %s priority)\n",
		task.ID, task.Topic, task.DueDate.Format(domain.DateLayout), task.Priority)
	return nil
}

// List prints all tasks, optionally filtered by status
func (c *TaskCommand) List(ctx context.Context, status string) error {
	var tasks []*domain.Task
	var err error

	if status != "" {
		parsed, parseErr := domain.ParseStatus(status)
		if parseErr != nil {
			return c.errorHandler.Handle("list tasks", parseErr)
		}
		tasks, err = c.app.services.TaskService.ListTasksByStatus(ctx, parsed)
	} else {
		tasks, err = c.app.services.TaskService.ListTasks(ctx)
	}
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	if len(tasks) == 0 {
		fmt.Fprintln(c.app.out, "No tasks found")
		return nil
	}

	w := tabwriter.NewWriter(c.app.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTOPIC\tDUE\tSTATUS\tPRIORITY\tPROGRESS")
	for _, task := range tasks {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d%%\n",
			task.ID, task.Topic, task.DueDate.Format(domain.DateLayout),
			task.Status, task.Priority, task.Progress)
	}
	return w.Flush()
}

// Complete marks a task as completed
func (c *TaskCommand) Complete(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return c.errorHandler.Handle("complete task", err)
	}

	task, err := c.app.services.TaskService.CompleteTask(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("complete task", err)
	}

	total := c.app.session.AwardCompletion()
	fmt.Fprintf(c.app.out, "Completed task %d: %s\n", task.ID, task.Topic)
	fmt.Fprintf(c.app.out, "You earned 10 points! Total points: %d\n", total)
	return nil
}

// Progress updates a task's progress percentage
func (c *TaskCommand) Progress(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return c.errorHandler.Handle("update progress", err)
	}
	progress, err := strconv.Atoi(args[1])
	if err != nil {
		return c.errorHandler.Handle("update progress", fmt.Errorf("progress must be a number: %s", args[1]))
	}

	task, err := c.app.services.TaskService.SetProgress(ctx, id, progress)
	if err != nil {
		return c.errorHandler.Handle("update progress", err)
	}

	fmt.Fprintf(c.app.out, "Task %d is now at %d%% (%s)\n", task.ID, task.Progress, task.Status)
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task ID: %s", s)
	}
	return id, nil
}
