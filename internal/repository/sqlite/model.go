package sqlite

// Database models. Dates are stored as "2006-01-02", clock times as
// "15:04" and timestamps as RFC3339 strings; parsing to domain types
// happens in the domain mapper.

// Task represents a row in the tasks table.
type Task struct {
	ID         int64
	Topic      string
	Subtopics  string
	DueDate    string
	Status     string
	Priority   string
	Progress   int64
	Category   string
	Recurrence string
}

// Slot represents a row in the slots table. Keyed by surrogate id with a
// UNIQUE(date, start_time, end_time) constraint so a date can hold any
// number of distinct intervals.
type Slot struct {
	ID        int64
	Date      string
	StartTime string
	EndTime   string
}

// ScheduleEntry represents a row in the schedule table. task_id always
// holds the task's numeric identity.
type ScheduleEntry struct {
	ID       int64
	Date     string
	Slot     string
	TaskID   int64
	Subtopic string
}

// TimeLog represents a row in the time_logs table.
type TimeLog struct {
	ID               int64
	TaskID           int64
	StartTime        string
	EndTime          string
	TimeSpentSeconds int64
}

// User represents a row in the users table.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
}
