package services

import (
	"context"

	"learning-tracker/internal/domain"
	"learning-tracker/internal/errors"
	"learning-tracker/internal/repository/sqlite"
	"learning-tracker/internal/timer"
)

// timerServiceImpl implements the TimerService interface. The tracker
// state lives in memory for the session; only completed intervals are
// persisted.
type timerServiceImpl struct {
	repo        sqlite.Repository
	tracker     *timer.Tracker
	taskService TaskService
	mapper      *domain.Mapper
}

// NewTimerService creates a new TimerService instance
func NewTimerService(repo sqlite.Repository, taskService TaskService) TimerService {
	return &timerServiceImpl{
		repo:        repo,
		tracker:     timer.NewTracker(),
		taskService: taskService,
		mapper:      domain.NewMapper(),
	}
}

// Start begins timing the given task after checking it exists
func (t *timerServiceImpl) Start(ctx context.Context, taskID int64) error {
	if _, err := t.taskService.GetTask(ctx, taskID); err != nil {
		return err
	}
	return t.tracker.Start(taskID)
}

// Status reports whether the timer is running and for how long
func (t *timerServiceImpl) Status(ctx context.Context) (*TimerStatus, error) {
	if t.tracker.State() != timer.StateRunning {
		return &TimerStatus{Running: false}, nil
	}

	elapsed, err := t.tracker.Elapsed()
	if err != nil {
		return nil, err
	}

	return &TimerStatus{
		Running:   true,
		TaskID:    t.tracker.TaskID(),
		StartedAt: t.tracker.StartedAt(),
		Elapsed:   elapsed,
	}, nil
}

// Stop ends the running interval and persists the resulting time log
func (t *timerServiceImpl) Stop(ctx context.Context) (*domain.TimeLog, error) {
	log, err := t.tracker.Stop()
	if err != nil {
		return nil, err
	}

	dbLog := t.mapper.TimeLog.ToDatabase(log)
	if err := t.repo.CreateTimeLog(ctx, &dbLog); err != nil {
		// the interval must survive a failed persist
		t.tracker.Resume(log.TaskID, log.StartTime)
		return nil, err
	}

	log.ID = dbLog.ID
	return &log, nil
}

// ListLogs retrieves all persisted time logs
func (t *timerServiceImpl) ListLogs(ctx context.Context) ([]domain.TimeLog, error) {
	dbLogs, err := t.repo.ListTimeLogs(ctx)
	if err != nil {
		return nil, err
	}
	return t.mapLogs(dbLogs)
}

// ListLogsByTask retrieves the time logs of one task
func (t *timerServiceImpl) ListLogsByTask(ctx context.Context, taskID int64) ([]domain.TimeLog, error) {
	dbLogs, err := t.repo.ListTimeLogsByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return t.mapLogs(dbLogs)
}

func (t *timerServiceImpl) mapLogs(dbLogs []*sqlite.TimeLog) ([]domain.TimeLog, error) {
	logs := make([]domain.TimeLog, 0, len(dbLogs))
	for _, dbLog := range dbLogs {
		log, err := t.mapper.TimeLog.FromDatabase(*dbLog)
		if err != nil {
			return nil, errors.NewDatabaseError("map time log", err)
		}
		logs = append(logs, log)
	}
	return logs, nil
}
