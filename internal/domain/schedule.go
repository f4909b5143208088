package domain

import (
	"time"
)

// ScheduleEntry binds one subtopic of a task to a suggested time slot on a
// date. The slot label is free text produced by the plan generator; it is
// not required to match a catalogued TimeSlot.
type ScheduleEntry struct {
	ID       int64
	Date     time.Time
	Slot     string
	TaskID   int64
	Subtopic string
}

// IsValid checks if the schedule entry has valid data. The task reference
// is always the task's numeric identity, never its topic.
func (e ScheduleEntry) IsValid() bool {
	return e.TaskID > 0 && !e.Date.IsZero() && e.Subtopic != ""
}
