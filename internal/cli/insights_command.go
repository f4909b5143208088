package cli

import (
	"context"
	"fmt"
)

// InsightsCommand handles the insights subcommand
type InsightsCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewInsightsCommand creates a new insights command handler
func NewInsightsCommand(app *App) *InsightsCommand {
	return &InsightsCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Run generates productivity insights from the recorded tasks and time logs
func (c *InsightsCommand) Run(ctx context.Context) error {
	text, err := c.app.services.InsightService.GenerateInsights(ctx)
	if err != nil {
		return c.errorHandler.Handle("generate insights", err)
	}

	fmt.Fprintln(c.app.out, text)
	return nil
}
