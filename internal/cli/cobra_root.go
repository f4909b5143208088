package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"learning-tracker/internal/config"
	"learning-tracker/internal/services"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	app    *App
	config *config.Config
}

// NewRootCommand creates the root cobra command with all subcommands
func NewRootCommand(app *App, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		app:    app,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "lt",
		Short: "A command-line learning tracker",
		Long: `Learning Tracker (lt) tracks study tasks, time slots, schedules,
work time and quizzes from the command line.

EXAMPLES:
  lt task add "Go fundamentals" --due 2026-04-01 --priority High
  lt task list --status Pending
  lt slot add 2026-04-01 09:00 09:30
  lt schedule generate 1
  lt timer 1                               # Press Enter to stop and log time
  lt logs --task 1
  lt quiz 1 --count 5
  lt insights
  lt export tasks > tasks.csv

CONFIGURATION:
  Values cascade: defaults < ~/.lt/config.toml < environment variables

  LT_DB_DIR                 Database directory (default: ~/.lt)
  LT_DB_FILENAME            Database filename (default: lt.db)
  LT_GEN_BASE_URL           Generation endpoint base URL
  LT_GEN_MODEL              Generation model name
  LT_GEN_API_KEY            Generation API key
  LT_GEN_TIMEOUT            Generation timeout (default: 60s)
  LT_QUIZ_DEFAULT_QUESTIONS Default quiz question count (default: 5)
  LT_QUIZ_MAX_QUESTIONS     Maximum quiz question count (default: 10)
  LT_APP_TIMEOUT            Application timeout (default: 120s)
  LT_DEBUG                  Enable debug output`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(
		r.userCommand(),
		r.taskCommand(),
		r.slotCommand(),
		r.scheduleCommand(),
		r.timerCommand(),
		r.logsCommand(),
		r.quizCommand(),
		r.insightsCommand(),
		r.exportCommand(),
	)
}

func (r *RootCommand) userCommand() *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage the local account",
	}

	userCmd.AddCommand(&cobra.Command{
		Use:   "register [username] [password]",
		Short: "Create a new account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewUserCommand(r.app).Register(ctx, args)
		},
	})

	userCmd.AddCommand(&cobra.Command{
		Use:   "login [username] [password]",
		Short: "Verify account credentials",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewUserCommand(r.app).Login(ctx, args)
		},
	})

	return userCmd
}

func (r *RootCommand) taskCommand() *cobra.Command {
	taskCmd := &cobra.Command{
		Use:   "task",
		Short: "Manage learning tasks",
	}

	addCmd := &cobra.Command{
		Use:   "add [topic]",
		Short: "Add a new task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			input := services.TaskInput{Topic: args[0]}
			input.DueDate, _ = cmd.Flags().GetString("due")
			input.Subtopics, _ = cmd.Flags().GetString("subtopics")
			input.Priority, _ = cmd.Flags().GetString("priority")
			input.Category, _ = cmd.Flags().GetString("category")
			input.Recurrence, _ = cmd.Flags().GetString("recurrence")

			return NewTaskCommand(r.app).Add(ctx, input)
		},
	}
	addCmd.Flags().String("due", "", "Due date (YYYY-MM-DD, required)")
	addCmd.Flags().String("subtopics", "", "Comma-separated subtopics")
	addCmd.Flags().String("priority", "", "Priority: High, Medium or Low (default Medium)")
	addCmd.Flags().String("category", "", "Free-form category")
	addCmd.Flags().String("recurrence", "", "Recurrence: None, Daily, Weekly or Monthly (default None)")
	addCmd.MarkFlagRequired("due")
	taskCmd.AddCommand(addCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks ordered by priority",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			status, _ := cmd.Flags().GetString("status")
			return NewTaskCommand(r.app).List(ctx, status)
		},
	}
	listCmd.Flags().String("status", "", "Filter by status: Pending or Completed")
	taskCmd.AddCommand(listCmd)

	taskCmd.AddCommand(&cobra.Command{
		Use:   "complete [id]",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewTaskCommand(r.app).Complete(ctx, args)
		},
	})

	taskCmd.AddCommand(&cobra.Command{
		Use:   "progress [id] [percent]",
		Short: "Update a task's progress",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewTaskCommand(r.app).Progress(ctx, args)
		},
	})

	return taskCmd
}

func (r *RootCommand) slotCommand() *cobra.Command {
	slotCmd := &cobra.Command{
		Use:   "slot",
		Short: "Manage available time slots",
	}

	slotCmd.AddCommand(&cobra.Command{
		Use:   "add [date] [start] [end]",
		Short: "Add a time slot (rejects overlaps on the same date)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewSlotCommand(r.app).Add(ctx, args)
		},
	})

	slotCmd.AddCommand(&cobra.Command{
		Use:   "list [date]",
		Short: "List the slots of a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewSlotCommand(r.app).List(ctx, args)
		},
	})

	return slotCmd
}

func (r *RootCommand) scheduleCommand() *cobra.Command {
	scheduleCmd := &cobra.Command{
		Use:   "schedule",
		Short: "Generate and inspect study schedules",
	}

	scheduleCmd.AddCommand(&cobra.Command{
		Use:   "generate [task-id]",
		Short: "Generate and save a study plan for a pending task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewScheduleCommand(r.app).Generate(ctx, args)
		},
	})

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List saved schedule entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			taskID, _ := cmd.Flags().GetInt64("task")
			return NewScheduleCommand(r.app).List(ctx, taskID)
		},
	}
	listCmd.Flags().Int64("task", 0, "Only show entries for this task")
	scheduleCmd.AddCommand(listCmd)

	return scheduleCmd
}

func (r *RootCommand) timerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "timer [task-id]",
		Short: "Time work on a task",
		Long:  "Start a timer for a task. Press Enter to stop; the interval is saved as a time log.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No timeout: the timer runs until the user stops it
			return NewTimerCommand(r.app).Run(context.Background(), args)
		},
	}
}

func (r *RootCommand) logsCommand() *cobra.Command {
	logsCmd := &cobra.Command{
		Use:   "logs",
		Short: "List recorded time logs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			taskID, _ := cmd.Flags().GetInt64("task")
			return NewLogsCommand(r.app).List(ctx, taskID)
		},
	}
	logsCmd.Flags().Int64("task", 0, "Only show logs for this task")
	return logsCmd
}

func (r *RootCommand) quizCommand() *cobra.Command {
	quizCmd := &cobra.Command{
		Use:   "quiz [task-id]",
		Short: "Take a generated quiz for a completed task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No timeout: answering is interactive
			count, _ := cmd.Flags().GetInt("count")
			return NewQuizCommand(r.app).Run(context.Background(), args, count)
		},
	}
	quizCmd.Flags().Int("count", 0, "Number of questions (0 uses the configured default)")
	return quizCmd
}

func (r *RootCommand) insightsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Generate productivity insights from tasks and time logs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewInsightsCommand(r.app).Run(ctx)
		},
	}
}

func (r *RootCommand) exportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export [tasks|logs]",
		Short: "Export data as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewExportCommand(r.app).Execute(ctx, args)
		},
	}
}

func (r *RootCommand) commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.getAppTimeout())
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 120 * time.Second
}
