package cli

import (
	"context"
	"fmt"

	"learning-tracker/internal/export"
)

// ExportCommand handles the export command
type ExportCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute writes the requested data set as CSV to the output stream
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	switch args[0] {
	case "tasks":
		tasks, err := c.app.services.TaskService.ListTasks(ctx)
		if err != nil {
			return c.errorHandler.Handle("export tasks", err)
		}
		return export.WriteTasks(c.app.out, tasks)
	case "logs":
		logs, err := c.app.services.TimerService.ListLogs(ctx)
		if err != nil {
			return c.errorHandler.Handle("export time logs", err)
		}
		return export.WriteTimeLogs(c.app.out, logs)
	default:
		return fmt.Errorf("unknown export target %q, expected tasks or logs", args[0])
	}
}
