package domain

import (
	"fmt"
	"time"
)

// TimeLog represents a recorded interval of work time against a task,
// produced by one completed start/stop timer cycle.
type TimeLog struct {
	ID           int64
	TaskID       int64
	StartTime    time.Time
	EndTime      time.Time
	SpentSeconds int64
}

// NewTimeLog creates a TimeLog for the given task and interval.
func NewTimeLog(taskID int64, start, end time.Time) TimeLog {
	return TimeLog{
		TaskID:       taskID,
		StartTime:    start,
		EndTime:      end,
		SpentSeconds: int64(end.Sub(start).Seconds()),
	}
}

// Duration returns the spent time as a time.Duration.
func (l TimeLog) Duration() time.Duration {
	return time.Duration(l.SpentSeconds) * time.Second
}

// IsValid checks if the time log has valid data.
func (l TimeLog) IsValid() bool {
	if l.TaskID <= 0 {
		return false
	}
	if l.StartTime.IsZero() || l.EndTime.IsZero() {
		return false
	}
	if l.EndTime.Before(l.StartTime) {
		return false
	}
	return l.SpentSeconds >= 0
}

// FormatSpent formats the spent time as HH:MM:SS.
func FormatSpent(seconds int64) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}
