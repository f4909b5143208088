package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"learning-tracker/internal/domain"
)

// ScheduleCommand handles the schedule subcommands
type ScheduleCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewScheduleCommand creates a new schedule command handler
func NewScheduleCommand(app *App) *ScheduleCommand {
	return &ScheduleCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Generate asks the generator for a study plan and persists it
func (c *ScheduleCommand) Generate(ctx context.Context, args []string) error {
	taskID, err := parseID(args[0])
	if err != nil {
		return c.errorHandler.Handle("generate schedule", err)
	}

	entries, err := c.app.services.ScheduleService.Allocate(ctx, taskID)
	if err != nil {
		return c.errorHandler.Handle("generate schedule", err)
	}

	fmt.Fprintf(c.app.out, "Saved %d schedule entries for task %d:\n", len(entries), taskID)
	for _, entry := range entries {
		fmt.Fprintf(c.app.out, "  %s  %s\n", entry.Slot, entry.Subtopic)
	}
	return nil
}

// List prints persisted schedule entries, optionally for one task
func (c *ScheduleCommand) List(ctx context.Context, taskID int64) error {
	var entries []domain.ScheduleEntry
	var err error

	if taskID > 0 {
		entries, err = c.app.services.ScheduleService.ListEntriesByTask(ctx, taskID)
	} else {
		entries, err = c.app.services.ScheduleService.ListEntries(ctx)
	}
	if err != nil {
		return c.errorHandler.Handle("list schedule", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(c.app.out, "No schedule entries found")
		return nil
	}

	topics, err := c.taskTopics(ctx)
	if err != nil {
		return c.errorHandler.Handle("list schedule", err)
	}

	w := tabwriter.NewWriter(c.app.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tSLOT\tTASK\tSUBTOPIC")
	for _, entry := range entries {
		topic, ok := topics[entry.TaskID]
		if !ok {
			topic = fmt.Sprintf("task %d", entry.TaskID)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			entry.Date.Format(domain.DateLayout), entry.Slot, topic, entry.Subtopic)
	}
	return w.Flush()
}

// taskTopics maps task IDs to topics for display
func (c *ScheduleCommand) taskTopics(ctx context.Context) (map[int64]string, error) {
	tasks, err := c.app.services.TaskService.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	topics := make(map[int64]string, len(tasks))
	for _, task := range tasks {
		topics[task.ID] = task.Topic
	}
	return topics, nil
}
