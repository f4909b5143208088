package services

import (
	"context"

	"learning-tracker/internal/domain"
	"learning-tracker/internal/errors"
	"learning-tracker/internal/genai"
	"learning-tracker/internal/logging"
	"learning-tracker/internal/plan"
	"learning-tracker/internal/repository/sqlite"
)

// scheduleServiceImpl implements the ScheduleService interface
type scheduleServiceImpl struct {
	repo        sqlite.Repository
	generator   genai.Generator
	taskService TaskService
	slotService SlotService
	mapper      *domain.Mapper
}

// NewScheduleService creates a new ScheduleService instance
func NewScheduleService(repo sqlite.Repository, generator genai.Generator,
	taskService TaskService, slotService SlotService) ScheduleService {
	return &scheduleServiceImpl{
		repo:        repo,
		generator:   generator,
		taskService: taskService,
		slotService: slotService,
		mapper:      domain.NewMapper(),
	}
}

// Allocate generates a study plan for a pending task and persists the
// resulting schedule entries in one transaction. A generation that yields
// no usable rows persists nothing.
func (s *scheduleServiceImpl) Allocate(ctx context.Context, taskID int64) ([]domain.ScheduleEntry, error) {
	task, err := s.taskService.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.IsCompleted() {
		return nil, errors.NewStateError("cannot schedule a completed task")
	}

	slots, err := s.slotService.SlotsForDate(ctx, task.DueDate.Format(domain.DateLayout))
	if err != nil {
		return nil, err
	}

	prompt := genai.SchedulePrompt(*task, slots)
	text, err := s.generator.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	logging.Debugf("allocation for task %d generated %d bytes\n", taskID, len(text))

	rows := plan.ParseTable(text)
	if len(rows) == 0 {
		return nil, errors.NewGenerationError("generated text contained no schedule rows", nil)
	}

	dbEntries := make([]*sqlite.ScheduleEntry, len(rows))
	for i, row := range rows {
		entry := s.mapper.Schedule.ToDatabase(domain.ScheduleEntry{
			Date:     task.DueDate,
			Slot:     row.SuggestedSlot,
			TaskID:   task.ID,
			Subtopic: row.Subtopic,
		})
		dbEntries[i] = &entry
	}

	if err := s.repo.CreateScheduleEntries(ctx, dbEntries); err != nil {
		return nil, err
	}

	entries := make([]domain.ScheduleEntry, len(dbEntries))
	for i, dbEntry := range dbEntries {
		entry, err := s.mapper.Schedule.FromDatabase(*dbEntry)
		if err != nil {
			return nil, errors.NewDatabaseError("map schedule entry", err)
		}
		entries[i] = entry
	}
	return entries, nil
}

// ListEntries retrieves all persisted schedule entries
func (s *scheduleServiceImpl) ListEntries(ctx context.Context) ([]domain.ScheduleEntry, error) {
	dbEntries, err := s.repo.ListScheduleEntries(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapEntries(dbEntries)
}

// ListEntriesByTask retrieves the schedule entries of one task
func (s *scheduleServiceImpl) ListEntriesByTask(ctx context.Context, taskID int64) ([]domain.ScheduleEntry, error) {
	dbEntries, err := s.repo.ListScheduleEntriesByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return s.mapEntries(dbEntries)
}

func (s *scheduleServiceImpl) mapEntries(dbEntries []*sqlite.ScheduleEntry) ([]domain.ScheduleEntry, error) {
	entries := make([]domain.ScheduleEntry, 0, len(dbEntries))
	for _, dbEntry := range dbEntries {
		entry, err := s.mapper.Schedule.FromDatabase(*dbEntry)
		if err != nil {
			return nil, errors.NewDatabaseError("map schedule entry", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
