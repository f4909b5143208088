package cli

import (
	"context"
	"fmt"
)

// SlotCommand handles the slot subcommands
type SlotCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewSlotCommand creates a new slot command handler
func NewSlotCommand(app *App) *SlotCommand {
	return &SlotCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Add stores a new time slot
func (c *SlotCommand) Add(ctx context.Context, args []string) error {
	date, start, end := args[0], args[1], args[2]

	slot, err := c.app.services.SlotService.AddSlot(ctx, date, start, end)
	if err != nil {
		return c.errorHandler.Handle("add slot", err)
	}

	fmt.Fprintf(c.app.out, "Added slot %s on %s\n", slot.Label(), date)
	return nil
}

// List prints the slots of a date
func (c *SlotCommand) List(ctx context.Context, args []string) error {
	date := args[0]

	slots, err := c.app.services.SlotService.SlotsForDate(ctx, date)
	if err != nil {
		return c.errorHandler.Handle("list slots", err)
	}

	if len(slots) == 0 {
		fmt.Fprintf(c.app.out, "No slots on %s\n", date)
		return nil
	}

	fmt.Fprintf(c.app.out, "Slots on %s:\n", date)
	for _, slot := range slots {
		fmt.Fprintf(c.app.out, "  %s\n", slot.Label())
	}
	return nil
}
