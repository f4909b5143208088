package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learning-tracker/internal/config"
	"learning-tracker/internal/genai"
	"learning-tracker/internal/repository/sqlite"
	"learning-tracker/internal/services"
)

type fixedGenerator struct {
	response string
}

func (f *fixedGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	return f.response, nil
}

func newTestApp(t *testing.T, generator genai.Generator, input string) (*App, *bytes.Buffer) {
	t.Helper()

	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	taskService := services.NewTaskService(repo)
	slotService := services.NewSlotService(repo)
	timerService := services.NewTimerService(repo, taskService)
	container := &services.ServiceContainer{
		TaskService:     taskService,
		SlotService:     slotService,
		ScheduleService: services.NewScheduleService(repo, generator, taskService, slotService),
		TimerService:    timerService,
		QuizService:     services.NewQuizService(generator, taskService, 5, 10),
		InsightService:  services.NewInsightService(generator, taskService, timerService),
		UserService:     services.NewUserService(repo),
	}

	var out bytes.Buffer
	app := NewAppWithIO(container, config.NewConfig(), &out, strings.NewReader(input))
	return app, &out
}

func addTask(t *testing.T, app *App) {
	t.Helper()
	err := NewTaskCommand(app).Add(context.Background(), services.TaskInput{
		Topic:    "Go fundamentals",
		DueDate:  "2026-04-01",
		Priority: "High",
	})
	require.NoError(t, err)
}

func TestTaskCommand(t *testing.T) {
	t.Run("should add and list tasks", func(t *testing.T) {
		app, out := newTestApp(t, &fixedGenerator{}, "")
		addTask(t, app)

		err := NewTaskCommand(app).List(context.Background(), "")

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Go fundamentals")
		assert.Contains(t, out.String(), "Pending")
	})

	t.Run("should complete a task", func(t *testing.T) {
		app, out := newTestApp(t, &fixedGenerator{}, "")
		addTask(t, app)

		err := NewTaskCommand(app).Complete(context.Background(), []string{"1"})

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Completed task 1")
		assert.Contains(t, out.String(), "You earned 10 points! Total points: 10")
	})

	t.Run("should report friendly errors for unknown tasks", func(t *testing.T) {
		app, _ := newTestApp(t, &fixedGenerator{}, "")

		err := NewTaskCommand(app).Complete(context.Background(), []string{"42"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("should update progress", func(t *testing.T) {
		app, out := newTestApp(t, &fixedGenerator{}, "")
		addTask(t, app)

		err := NewTaskCommand(app).Progress(context.Background(), []string{"1", "60"})

		require.NoError(t, err)
		assert.Contains(t, out.String(), "60%")
	})
}

func TestSlotCommand(t *testing.T) {
	t.Run("should add and list slots", func(t *testing.T) {
		app, out := newTestApp(t, &fixedGenerator{}, "")
		cmd := NewSlotCommand(app)
		ctx := context.Background()

		require.NoError(t, cmd.Add(ctx, []string{"2026-04-01", "09:00", "09:30"}))
		require.NoError(t, cmd.List(ctx, []string{"2026-04-01"}))

		assert.Contains(t, out.String(), "09:00 - 09:30")
	})

	t.Run("should surface conflicts as friendly errors", func(t *testing.T) {
		app, _ := newTestApp(t, &fixedGenerator{}, "")
		cmd := NewSlotCommand(app)
		ctx := context.Background()

		require.NoError(t, cmd.Add(ctx, []string{"2026-04-01", "09:00", "09:30"}))
		err := cmd.Add(ctx, []string{"2026-04-01", "09:15", "09:45"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "conflict")
	})
}

func TestScheduleCommand(t *testing.T) {
	t.Run("should generate and list schedule entries", func(t *testing.T) {
		generator := &fixedGenerator{response: "| Variables | 30 min | 09:00 - 09:30 |"}
		app, out := newTestApp(t, generator, "")
		addTask(t, app)
		cmd := NewScheduleCommand(app)
		ctx := context.Background()

		require.NoError(t, cmd.Generate(ctx, []string{"1"}))
		require.NoError(t, cmd.List(ctx, 0))

		assert.Contains(t, out.String(), "Saved 1 schedule entries")
		assert.Contains(t, out.String(), "Variables")
	})

	t.Run("should list entries with the task topic", func(t *testing.T) {
		generator := &fixedGenerator{response: "| Variables | 30 min | 09:00 - 09:30 |"}
		app, out := newTestApp(t, generator, "")
		addTask(t, app)
		cmd := NewScheduleCommand(app)
		ctx := context.Background()

		require.NoError(t, cmd.Generate(ctx, []string{"1"}))
		out.Reset()
		require.NoError(t, cmd.List(ctx, 0))

		assert.Contains(t, out.String(), "TASK")
		assert.Contains(t, out.String(), "Go fundamentals")
	})
}

func TestTimerCommand(t *testing.T) {
	t.Run("should log time when the user presses enter", func(t *testing.T) {
		app, out := newTestApp(t, &fixedGenerator{}, "\n")
		addTask(t, app)

		err := NewTimerCommand(app).Run(context.Background(), []string{"1"})

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Timer started for task 1")
		assert.Contains(t, out.String(), "Logged 00:00:0")
	})
}

func TestQuizCommand(t *testing.T) {
	t.Run("should run a quiz end to end", func(t *testing.T) {
		generator := &fixedGenerator{response: `1. Question: What keyword declares a variable?
Type: Multiple Choice
Options: A) var, B) let, C) def
Answer: var

2. Question: Explain goroutines.
Type: Open-ended
Answer: Lightweight threads.`}
		app, out := newTestApp(t, generator, "var\nthey are lightweight threads\n")
		addTask(t, app)
		_, err := app.services.TaskService.CompleteTask(context.Background(), 1)
		require.NoError(t, err)

		err = NewQuizCommand(app).Run(context.Background(), []string{"1"}, 2)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Score: 2/2 (perfect)")
	})
}

func TestInsightsCommand(t *testing.T) {
	t.Run("should print generated insights", func(t *testing.T) {
		generator := &fixedGenerator{response: "You study best in the morning."}
		app, out := newTestApp(t, generator, "\n")
		addTask(t, app)

		err := NewTimerCommand(app).Run(context.Background(), []string{"1"})
		require.NoError(t, err)

		err = NewInsightsCommand(app).Run(context.Background())

		require.NoError(t, err)
		assert.Contains(t, out.String(), "You study best in the morning.")
	})

	t.Run("should report missing data as a friendly error", func(t *testing.T) {
		app, _ := newTestApp(t, &fixedGenerator{}, "")

		err := NewInsightsCommand(app).Run(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no task or time log data")
	})
}

func TestUserCommand(t *testing.T) {
	t.Run("should register and log in", func(t *testing.T) {
		app, out := newTestApp(t, &fixedGenerator{}, "")
		cmd := NewUserCommand(app)
		ctx := context.Background()

		require.NoError(t, cmd.Register(ctx, []string{"alex", "secret"}))
		require.NoError(t, cmd.Login(ctx, []string{"alex", "secret"}))

		assert.Contains(t, out.String(), "Registered user alex")
		assert.Contains(t, out.String(), "Welcome back, alex")
	})
}

func TestExportCommand(t *testing.T) {
	t.Run("should export tasks as CSV", func(t *testing.T) {
		app, out := newTestApp(t, &fixedGenerator{}, "")
		addTask(t, app)

		err := NewExportCommand(app).Execute(context.Background(), []string{"tasks"})

		require.NoError(t, err)
		assert.Contains(t, out.String(), "id,topic,subtopics")
		assert.Contains(t, out.String(), "Go fundamentals")
	})

	t.Run("should reject unknown targets", func(t *testing.T) {
		app, _ := newTestApp(t, &fixedGenerator{}, "")

		err := NewExportCommand(app).Execute(context.Background(), []string{"everything"})

		require.Error(t, err)
	})
}
