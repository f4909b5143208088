package timer

import (
	"time"

	"learning-tracker/internal/domain"
	"learning-tracker/internal/errors"
)

// timeNow is a variable to allow mocking in tests
var timeNow = time.Now

// State represents the current state of a tracker
type State int

const (
	StateIdle State = iota
	StateRunning
)

// String returns the string representation of a tracker state
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Tracker is a two-state stopwatch bound to a single task. It starts idle,
// Start moves it to running, Stop moves it back to idle and yields the
// completed interval.
type Tracker struct {
	state     State
	taskID    int64
	startedAt time.Time
}

// NewTracker creates an idle tracker
func NewTracker() *Tracker {
	return &Tracker{state: StateIdle}
}

// State returns the current tracker state
func (t *Tracker) State() State {
	return t.state
}

// TaskID returns the task the running interval belongs to. Zero when idle.
func (t *Tracker) TaskID() int64 {
	if t.state != StateRunning {
		return 0
	}
	return t.taskID
}

// StartedAt returns the start of the running interval. Zero when idle.
func (t *Tracker) StartedAt() time.Time {
	if t.state != StateRunning {
		return time.Time{}
	}
	return t.startedAt
}

// Start begins timing the given task. Starting while already running is a
// state error and leaves the running interval untouched.
func (t *Tracker) Start(taskID int64) error {
	if t.state == StateRunning {
		return errors.NewStateError("timer is already running")
	}

	t.state = StateRunning
	t.taskID = taskID
	t.startedAt = timeNow()
	return nil
}

// Elapsed returns the duration of the running interval so far
func (t *Tracker) Elapsed() (time.Duration, error) {
	if t.state != StateRunning {
		return 0, errors.NewStateError("no active timer")
	}
	return timeNow().Sub(t.startedAt), nil
}

// Resume restores a running interval, for callers that stopped the
// tracker but could not keep the resulting log.
func (t *Tracker) Resume(taskID int64, startedAt time.Time) {
	t.state = StateRunning
	t.taskID = taskID
	t.startedAt = startedAt
}

// Stop ends the running interval and returns the resulting time log. The
// tracker is idle afterwards.
func (t *Tracker) Stop() (domain.TimeLog, error) {
	if t.state != StateRunning {
		return domain.TimeLog{}, errors.NewStateError("no active timer")
	}

	log := domain.NewTimeLog(t.taskID, t.startedAt, timeNow())
	t.state = StateIdle
	t.taskID = 0
	t.startedAt = time.Time{}
	return log, nil
}
