package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"learning-tracker/internal/domain"
)

// LogsCommand handles the logs command
type LogsCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewLogsCommand creates a new logs command handler
func NewLogsCommand(app *App) *LogsCommand {
	return &LogsCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// List prints persisted time logs, optionally for one task, with a total
func (c *LogsCommand) List(ctx context.Context, taskID int64) error {
	var logs []domain.TimeLog
	var err error

	if taskID > 0 {
		logs, err = c.app.services.TimerService.ListLogsByTask(ctx, taskID)
	} else {
		logs, err = c.app.services.TimerService.ListLogs(ctx)
	}
	if err != nil {
		return c.errorHandler.Handle("list time logs", err)
	}

	if len(logs) == 0 {
		fmt.Fprintln(c.app.out, "No time logs found")
		return nil
	}

	var total int64
	w := tabwriter.NewWriter(c.app.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TASK\tSTART\tEND\tSPENT")
	for _, log := range logs {
		total += log.SpentSeconds
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			log.TaskID,
			log.StartTime.Format("2006-01-02 15:04:05"),
			log.EndTime.Format("2006-01-02 15:04:05"),
			domain.FormatSpent(log.SpentSeconds))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(c.app.out, "Total: %s\n", domain.FormatSpent(total))
	return nil
}
