package cli

import (
	"fmt"
	"io"
	"os"

	"learning-tracker/internal/config"
	"learning-tracker/internal/genai"
	"learning-tracker/internal/repository/sqlite"
	"learning-tracker/internal/services"
)

// App bundles the services, the session state and the I/O streams the
// command handlers work with
type App struct {
	services *services.ServiceContainer
	session  *services.Session
	config   *config.Config
	out      io.Writer
	in       io.Reader
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(container *services.ServiceContainer, cfg *config.Config) *App {
	return &App{
		services: container,
		session:  services.NewSession(),
		config:   cfg,
		out:      os.Stdout,
		in:       os.Stdin,
	}
}

// NewAppWithIO creates an App writing to and reading from the given streams
func NewAppWithIO(container *services.ServiceContainer, cfg *config.Config, out io.Writer, in io.Reader) *App {
	return &App{
		services: container,
		session:  services.NewSession(),
		config:   cfg,
		out:      out,
		in:       in,
	}
}

// BuildServices wires the repository, generator and all services from the
// configuration. The caller owns the returned repository.
func BuildServices(cfg *config.Config) (*services.ServiceContainer, *sqlite.SQLiteRepository, error) {
	if err := os.MkdirAll(cfg.Database.Dir, os.FileMode(cfg.Database.DirPermissions)); err != nil {
		return nil, nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	repo, err := sqlite.New(cfg.GetDatabasePath())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	generator := genai.NewClient(cfg.Generation.BaseURL, cfg.Generation.Model,
		cfg.Generation.APIKey, cfg.Generation.Timeout)

	taskService := services.NewTaskService(repo)
	slotService := services.NewSlotService(repo)
	timerService := services.NewTimerService(repo, taskService)

	container := &services.ServiceContainer{
		TaskService:     taskService,
		SlotService:     slotService,
		ScheduleService: services.NewScheduleService(repo, generator, taskService, slotService),
		TimerService:    timerService,
		QuizService:     services.NewQuizService(generator, taskService, cfg.Quiz.DefaultQuestions, cfg.Quiz.MaxQuestions),
		InsightService:  services.NewInsightService(generator, taskService, timerService),
		UserService:     services.NewUserService(repo),
	}

	return container, repo, nil
}
