package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learning-tracker/internal/errors"
)

func TestTimerService(t *testing.T) {
	t.Run("should persist a time log on stop", func(t *testing.T) {
		repo := newTestRepo(t)
		taskSvc := NewTaskService(repo)
		svc := NewTimerService(repo, taskSvc)
		ctx := context.Background()
		task := createTestTask(t, taskSvc)

		require.NoError(t, svc.Start(ctx, task.ID))

		log, err := svc.Stop(ctx)

		require.NoError(t, err)
		assert.NotZero(t, log.ID)
		assert.Equal(t, task.ID, log.TaskID)
		assert.GreaterOrEqual(t, log.SpentSeconds, int64(0))

		logs, err := svc.ListLogs(ctx)
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, log.ID, logs[0].ID)
	})

	t.Run("should keep the timer running when persisting fails", func(t *testing.T) {
		repo := newTestRepo(t)
		taskSvc := NewTaskService(repo)
		svc := NewTimerService(repo, taskSvc)
		ctx := context.Background()
		task := createTestTask(t, taskSvc)

		require.NoError(t, svc.Start(ctx, task.ID))
		require.NoError(t, repo.Close())

		_, err := svc.Stop(ctx)
		require.Error(t, err)

		status, statusErr := svc.Status(ctx)
		require.NoError(t, statusErr)
		assert.True(t, status.Running)
		assert.Equal(t, task.ID, status.TaskID)
	})

	t.Run("should reject starting an unknown task", func(t *testing.T) {
		repo := newTestRepo(t)
		taskSvc := NewTaskService(repo)
		svc := NewTimerService(repo, taskSvc)

		err := svc.Start(context.Background(), 999)

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})

	t.Run("should reject a second start while running", func(t *testing.T) {
		repo := newTestRepo(t)
		taskSvc := NewTaskService(repo)
		svc := NewTimerService(repo, taskSvc)
		ctx := context.Background()
		task := createTestTask(t, taskSvc)

		require.NoError(t, svc.Start(ctx, task.ID))

		err := svc.Start(ctx, task.ID)

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeState))
	})

	t.Run("should reject stop while idle", func(t *testing.T) {
		repo := newTestRepo(t)
		taskSvc := NewTaskService(repo)
		svc := NewTimerService(repo, taskSvc)

		_, err := svc.Stop(context.Background())

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeState))
	})

	t.Run("should report status in both states", func(t *testing.T) {
		repo := newTestRepo(t)
		taskSvc := NewTaskService(repo)
		svc := NewTimerService(repo, taskSvc)
		ctx := context.Background()
		task := createTestTask(t, taskSvc)

		status, err := svc.Status(ctx)
		require.NoError(t, err)
		assert.False(t, status.Running)

		require.NoError(t, svc.Start(ctx, task.ID))

		status, err = svc.Status(ctx)
		require.NoError(t, err)
		assert.True(t, status.Running)
		assert.Equal(t, task.ID, status.TaskID)
		assert.False(t, status.StartedAt.IsZero())
		assert.GreaterOrEqual(t, status.Elapsed, time.Duration(0))
	})

	t.Run("should filter logs by task", func(t *testing.T) {
		repo := newTestRepo(t)
		taskSvc := NewTaskService(repo)
		svc := NewTimerService(repo, taskSvc)
		ctx := context.Background()

		first := createTestTask(t, taskSvc)
		second := createTestTask(t, taskSvc)

		require.NoError(t, svc.Start(ctx, first.ID))
		_, err := svc.Stop(ctx)
		require.NoError(t, err)

		require.NoError(t, svc.Start(ctx, second.ID))
		_, err = svc.Stop(ctx)
		require.NoError(t, err)

		logs, err := svc.ListLogsByTask(ctx, first.ID)

		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, first.ID, logs[0].TaskID)
	})
}
