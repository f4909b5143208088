package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// QuizCommand handles the quiz command
type QuizCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewQuizCommand creates a new quiz command handler
func NewQuizCommand(app *App) *QuizCommand {
	return &QuizCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Run generates a quiz for a completed task, collects one answer per
// question from the input stream and prints the scored result.
func (c *QuizCommand) Run(ctx context.Context, args []string, count int) error {
	taskID, err := parseID(args[0])
	if err != nil {
		return c.errorHandler.Handle("run quiz", err)
	}

	session, err := c.app.services.QuizService.GenerateQuiz(ctx, taskID, count)
	if err != nil {
		return c.errorHandler.Handle("run quiz", err)
	}

	fmt.Fprintf(c.app.out, "Quiz %s for task %d (%d questions)\n\n",
		session.ID, session.TaskID, len(session.Questions))

	reader := bufio.NewReader(c.app.in)
	answers := make([]string, 0, len(session.Questions))
	for i, question := range session.Questions {
		fmt.Fprintf(c.app.out, "%d. %s\n", i+1, question.Text)
		for _, option := range question.Options {
			fmt.Fprintf(c.app.out, "   %s\n", option)
		}
		fmt.Fprint(c.app.out, "> ")

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			break
		}
		answers = append(answers, strings.TrimRight(line, "\r\n"))
	}

	result := c.app.services.QuizService.EvaluateQuiz(session, answers)

	fmt.Fprintf(c.app.out, "\nScore: %d/%d (%s)\n", result.Score, result.Total, result.Tier)
	for _, line := range result.Feedback {
		fmt.Fprintf(c.app.out, "  %s\n", line)
	}
	return nil
}
