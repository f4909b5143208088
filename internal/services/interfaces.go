package services

import (
	"context"
	"time"

	"learning-tracker/internal/domain"
	"learning-tracker/internal/quiz"
)

// TaskInput carries the raw fields for creating a task
type TaskInput struct {
	Topic      string
	Subtopics  string
	DueDate    string
	Priority   string
	Category   string
	Recurrence string
}

// TimerStatus describes the state of the session timer
type TimerStatus struct {
	Running   bool          `json:"running"`
	TaskID    int64         `json:"task_id,omitempty"`
	StartedAt time.Time     `json:"started_at,omitempty"`
	Elapsed   time.Duration `json:"elapsed,omitempty"`
}

// QuizSession holds a generated quiz for the duration of one sitting
type QuizSession struct {
	ID        string          `json:"id"`
	TaskID    int64           `json:"task_id"`
	Questions []quiz.Question `json:"questions"`
}

// TaskService handles task lifecycle operations
type TaskService interface {
	CreateTask(ctx context.Context, input TaskInput) (*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	ListTasksByStatus(ctx context.Context, status domain.Status) ([]*domain.Task, error)
	SetProgress(ctx context.Context, id int64, progress int) (*domain.Task, error)
	CompleteTask(ctx context.Context, id int64) (*domain.Task, error)
}

// SlotService handles the time slot catalog and its conflict rules
type SlotService interface {
	AddSlot(ctx context.Context, date, start, end string) (*domain.TimeSlot, error)
	SlotsForDate(ctx context.Context, date string) ([]domain.TimeSlot, error)
}

// ScheduleService turns generated study plans into persisted schedule entries
type ScheduleService interface {
	Allocate(ctx context.Context, taskID int64) ([]domain.ScheduleEntry, error)
	ListEntries(ctx context.Context) ([]domain.ScheduleEntry, error)
	ListEntriesByTask(ctx context.Context, taskID int64) ([]domain.ScheduleEntry, error)
}

// TimerService manages the session timer and its persisted time logs
type TimerService interface {
	Start(ctx context.Context, taskID int64) error
	Status(ctx context.Context) (*TimerStatus, error)
	Stop(ctx context.Context) (*domain.TimeLog, error)
	ListLogs(ctx context.Context) ([]domain.TimeLog, error)
	ListLogsByTask(ctx context.Context, taskID int64) ([]domain.TimeLog, error)
}

// QuizService generates and scores quizzes for completed tasks
type QuizService interface {
	GenerateQuiz(ctx context.Context, taskID int64, count int) (*QuizSession, error)
	EvaluateQuiz(session *QuizSession, answers []string) quiz.Result
}

// InsightService summarizes recorded tasks and time logs into
// generated productivity insights
type InsightService interface {
	GenerateInsights(ctx context.Context) (string, error)
}

// UserService manages the local account
type UserService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	TaskService     TaskService
	SlotService     SlotService
	ScheduleService ScheduleService
	TimerService    TimerService
	QuizService     QuizService
	InsightService  InsightService
	UserService     UserService
}
