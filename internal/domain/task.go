package domain

import (
	"fmt"
	"time"
)

// DateLayout is the storage and display layout for calendar dates.
const DateLayout = "2006-01-02"

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

// ParseStatus converts a string to a Status, rejecting unknown values.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusCompleted:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown status: %q", s)
	}
}

// Priority represents the urgency of a task.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// ParsePriority converts a string to a Priority, rejecting unknown values.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return Priority(s), nil
	default:
		return "", fmt.Errorf("unknown priority: %q", s)
	}
}

// Rank returns the sort rank of a priority, highest first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// Recurrence represents a task's repetition cadence. Storage only; no
// automatic regeneration happens.
type Recurrence string

const (
	RecurrenceNone    Recurrence = "None"
	RecurrenceDaily   Recurrence = "Daily"
	RecurrenceWeekly  Recurrence = "Weekly"
	RecurrenceMonthly Recurrence = "Monthly"
)

// ParseRecurrence converts a string to a Recurrence, rejecting unknown values.
func ParseRecurrence(s string) (Recurrence, error) {
	switch Recurrence(s) {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return Recurrence(s), nil
	default:
		return "", fmt.Errorf("unknown recurrence: %q", s)
	}
}

// Task represents a learning task in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID         int64
	Topic      string
	Subtopics  string
	DueDate    time.Time
	Status     Status
	Priority   Priority
	Progress   int
	Category   string
	Recurrence Recurrence
}

// NewTask creates a pending Task with zero progress.
func NewTask(topic string, dueDate time.Time, priority Priority, category string, recurrence Recurrence) Task {
	return Task{
		Topic:      topic,
		DueDate:    dueDate,
		Status:     StatusPending,
		Priority:   priority,
		Progress:   0,
		Category:   category,
		Recurrence: recurrence,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	if t.Topic == "" || t.DueDate.IsZero() {
		return false
	}
	if t.Progress < 0 || t.Progress > 100 {
		return false
	}
	if _, err := ParseStatus(string(t.Status)); err != nil {
		return false
	}
	if _, err := ParsePriority(string(t.Priority)); err != nil {
		return false
	}
	if _, err := ParseRecurrence(string(t.Recurrence)); err != nil {
		return false
	}
	return true
}

// IsCompleted returns true if the task has been completed.
func (t Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// String returns the task topic for display purposes.
func (t Task) String() string {
	return t.Topic
}
