package services

import (
	"context"
	"strings"
	"time"

	"learning-tracker/internal/domain"
	"learning-tracker/internal/errors"
	"learning-tracker/internal/repository/sqlite"
	"learning-tracker/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
}

// NewTaskService creates a new TaskService instance
func NewTaskService(repo sqlite.Repository) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(),
	}
}

// CreateTask validates the input and stores a new pending task
func (t *taskServiceImpl) CreateTask(ctx context.Context, input TaskInput) (*domain.Task, error) {
	recurrence := input.Recurrence
	if strings.TrimSpace(recurrence) == "" {
		recurrence = string(domain.RecurrenceNone)
	}
	priority := input.Priority
	if strings.TrimSpace(priority) == "" {
		priority = string(domain.PriorityMedium)
	}

	if err := t.taskValidator.ValidateTaskForCreation(input.Topic, input.DueDate, priority, recurrence); err != nil {
		return nil, errors.NewValidationError("invalid task", err)
	}

	dueDate, err := time.Parse(domain.DateLayout, input.DueDate)
	if err != nil {
		return nil, errors.NewValidationError("invalid due date", err)
	}

	task := domain.NewTask(strings.TrimSpace(input.Topic), dueDate,
		domain.Priority(priority), strings.TrimSpace(input.Category), domain.Recurrence(recurrence))
	task.Subtopics = strings.TrimSpace(input.Subtopics)

	dbTask := t.mapper.Task.ToDatabase(task)
	if err := t.repo.CreateTask(ctx, &dbTask); err != nil {
		return nil, err
	}

	task.ID = dbTask.ID
	return &task, nil
}

// GetTask retrieves a task by its ID
func (t *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return nil, errors.NewValidationError("invalid task ID", err)
	}

	dbTask, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	task, err := t.mapper.Task.FromDatabase(*dbTask)
	if err != nil {
		return nil, errors.NewDatabaseError("map task", err)
	}
	return &task, nil
}

// ListTasks retrieves all tasks ordered by priority
func (t *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	dbTasks, err := t.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return t.mapTasks(dbTasks)
}

// ListTasksByStatus retrieves tasks with the given status ordered by priority
func (t *taskServiceImpl) ListTasksByStatus(ctx context.Context, status domain.Status) ([]*domain.Task, error) {
	dbTasks, err := t.repo.ListTasksByStatus(ctx, string(status))
	if err != nil {
		return nil, err
	}
	return t.mapTasks(dbTasks)
}

// SetProgress updates a task's progress percentage
func (t *taskServiceImpl) SetProgress(ctx context.Context, id int64, progress int) (*domain.Task, error) {
	if err := t.taskValidator.ValidateProgress(progress); err != nil {
		return nil, errors.NewValidationError("invalid progress", err)
	}

	task, err := t.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Progress = progress
	if progress == 100 {
		task.Status = domain.StatusCompleted
	}

	return t.saveTask(ctx, task)
}

// CompleteTask marks a task completed with full progress
func (t *taskServiceImpl) CompleteTask(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := t.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Status = domain.StatusCompleted
	task.Progress = 100

	return t.saveTask(ctx, task)
}

func (t *taskServiceImpl) saveTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	dbTask := t.mapper.Task.ToDatabase(*task)
	if err := t.repo.UpdateTask(ctx, &dbTask); err != nil {
		return nil, err
	}
	return task, nil
}

func (t *taskServiceImpl) mapTasks(dbTasks []*sqlite.Task) ([]*domain.Task, error) {
	tasks := make([]*domain.Task, 0, len(dbTasks))
	for _, dbTask := range dbTasks {
		task, err := t.mapper.Task.FromDatabase(*dbTask)
		if err != nil {
			return nil, errors.NewDatabaseError("map task", err)
		}
		tasks = append(tasks, &task)
	}
	return tasks, nil
}
