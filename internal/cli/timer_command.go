package cli

import (
	"context"
	"fmt"

	"learning-tracker/internal/domain"
)

// TimerCommand handles the timer subcommands
type TimerCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewTimerCommand creates a new timer command handler
func NewTimerCommand(app *App) *TimerCommand {
	return &TimerCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Run starts a timer for the task and stops it when the user presses Enter.
// The completed interval is persisted as a time log.
func (c *TimerCommand) Run(ctx context.Context, args []string) error {
	taskID, err := parseID(args[0])
	if err != nil {
		return c.errorHandler.Handle("start timer", err)
	}

	if err := c.app.services.TimerService.Start(ctx, taskID); err != nil {
		return c.errorHandler.Handle("start timer", err)
	}

	fmt.Fprintf(c.app.out, "Timer started for task %d. Press Enter to stop.\n", taskID)
	var discard string
	fmt.Fscanln(c.app.in, &discard)

	log, err := c.app.services.TimerService.Stop(ctx)
	if err != nil {
		return c.errorHandler.Handle("stop timer", err)
	}

	fmt.Fprintf(c.app.out, "Logged %s on task %d\n", domain.FormatSpent(log.SpentSeconds), log.TaskID)
	return nil
}
