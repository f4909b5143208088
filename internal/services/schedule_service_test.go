package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learning-tracker/internal/errors"
)

const planText = `Here is the plan:

| Subtopic | Duration | Suggested Slot |
|----------|----------|----------------|
| Variables | 30 min | 09:00 - 09:30 |
| Loops | 45 min | 10:00 - 10:45 |
| short | row |
`

func newScheduleFixture(t *testing.T, generator *fakeGenerator) (ScheduleService, TaskService) {
	t.Helper()
	repo := newTestRepo(t)
	taskSvc := NewTaskService(repo)
	slotSvc := NewSlotService(repo)
	return NewScheduleService(repo, generator, taskSvc, slotSvc), taskSvc
}

func TestScheduleService_Allocate(t *testing.T) {
	t.Run("should persist one entry per accepted row in order", func(t *testing.T) {
		generator := &fakeGenerator{response: planText}
		svc, taskSvc := newScheduleFixture(t, generator)
		task := createTestTask(t, taskSvc)

		entries, err := svc.Allocate(context.Background(), task.ID)

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "Variables", entries[0].Subtopic)
		assert.Equal(t, "09:00 - 09:30", entries[0].Slot)
		assert.Equal(t, "Loops", entries[1].Subtopic)
		assert.Equal(t, task.ID, entries[0].TaskID)
		assert.Equal(t, task.DueDate, entries[0].Date)
		assert.NotZero(t, entries[0].ID)
	})

	t.Run("should include the task and its slots in the prompt", func(t *testing.T) {
		generator := &fakeGenerator{response: planText}
		repo := newTestRepo(t)
		taskSvc := NewTaskService(repo)
		slotSvc := NewSlotService(repo)
		svc := NewScheduleService(repo, generator, taskSvc, slotSvc)

		task := createTestTask(t, taskSvc)
		_, err := slotSvc.AddSlot(context.Background(), "2026-04-01", "09:00", "09:30")
		require.NoError(t, err)

		_, err = svc.Allocate(context.Background(), task.ID)

		require.NoError(t, err)
		assert.Contains(t, generator.prompt, "Go fundamentals")
		assert.Contains(t, generator.prompt, "09:00 - 09:30")
	})

	t.Run("should fail when generation yields no rows", func(t *testing.T) {
		generator := &fakeGenerator{response: "I could not build a schedule."}
		svc, taskSvc := newScheduleFixture(t, generator)
		task := createTestTask(t, taskSvc)

		_, err := svc.Allocate(context.Background(), task.ID)

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeGeneration))

		entries, err := svc.ListEntries(context.Background())
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("should propagate generator failures", func(t *testing.T) {
		generator := &fakeGenerator{err: errors.NewGenerationError("endpoint down", nil)}
		svc, taskSvc := newScheduleFixture(t, generator)
		task := createTestTask(t, taskSvc)

		_, err := svc.Allocate(context.Background(), task.ID)

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeGeneration))
	})

	t.Run("should reject a completed task", func(t *testing.T) {
		generator := &fakeGenerator{response: planText}
		svc, taskSvc := newScheduleFixture(t, generator)
		task := createTestTask(t, taskSvc)
		_, err := taskSvc.CompleteTask(context.Background(), task.ID)
		require.NoError(t, err)

		_, err = svc.Allocate(context.Background(), task.ID)

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeState))
	})

	t.Run("should reject a missing task", func(t *testing.T) {
		generator := &fakeGenerator{response: planText}
		svc, _ := newScheduleFixture(t, generator)

		_, err := svc.Allocate(context.Background(), 999)

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})
}

func TestScheduleService_ListEntriesByTask(t *testing.T) {
	t.Run("should list only the task's entries", func(t *testing.T) {
		generator := &fakeGenerator{response: planText}
		svc, taskSvc := newScheduleFixture(t, generator)

		first := createTestTask(t, taskSvc)
		second := createTestTask(t, taskSvc)

		_, err := svc.Allocate(context.Background(), first.ID)
		require.NoError(t, err)
		_, err = svc.Allocate(context.Background(), second.ID)
		require.NoError(t, err)

		entries, err := svc.ListEntriesByTask(context.Background(), first.ID)

		require.NoError(t, err)
		require.Len(t, entries, 2)
		for _, entry := range entries {
			assert.Equal(t, first.ID, entry.TaskID)
		}
	})
}
