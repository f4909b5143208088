package cli

import (
	"context"
	"fmt"
)

// UserCommand handles the user subcommands
type UserCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewUserCommand creates a new user command handler
func NewUserCommand(app *App) *UserCommand {
	return &UserCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Register creates a new account
func (c *UserCommand) Register(ctx context.Context, args []string) error {
	username, password := args[0], args[1]

	user, err := c.app.services.UserService.Register(ctx, username, password)
	if err != nil {
		return c.errorHandler.Handle("register user", err)
	}

	fmt.Fprintf(c.app.out, "Registered user %s\n", user.Username)
	return nil
}

// Login verifies a username and password pair
func (c *UserCommand) Login(ctx context.Context, args []string) error {
	username, password := args[0], args[1]

	user, err := c.app.services.UserService.Authenticate(ctx, username, password)
	if err != nil {
		return c.errorHandler.Handle("log in", err)
	}

	fmt.Fprintf(c.app.out, "Welcome back, %s\n", user.Username)
	return nil
}
