package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Run("should accept known statuses", func(t *testing.T) {
		for _, s := range []string{"Pending", "Completed"} {
			status, err := ParseStatus(s)
			require.NoError(t, err)
			assert.Equal(t, Status(s), status)
		}
	})

	t.Run("should reject unknown statuses", func(t *testing.T) {
		for _, s := range []string{"", "pending", "Done"} {
			_, err := ParseStatus(s)
			assert.Error(t, err, "input %q", s)
		}
	})
}

func TestParsePriority(t *testing.T) {
	t.Run("should reject unknown priorities", func(t *testing.T) {
		for _, s := range []string{"", "high", "Urgent"} {
			_, err := ParsePriority(s)
			assert.Error(t, err, "input %q", s)
		}
	})

	t.Run("should rank priorities highest first", func(t *testing.T) {
		assert.Less(t, PriorityHigh.Rank(), PriorityMedium.Rank())
		assert.Less(t, PriorityMedium.Rank(), PriorityLow.Rank())
	})
}

func TestParseRecurrence(t *testing.T) {
	t.Run("should reject unknown recurrences", func(t *testing.T) {
		for _, s := range []string{"", "daily", "Yearly"} {
			_, err := ParseRecurrence(s)
			assert.Error(t, err, "input %q", s)
		}
	})
}

func TestNewTask(t *testing.T) {
	t.Run("should start pending with zero progress", func(t *testing.T) {
		due := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

		task := NewTask("Go fundamentals", due, PriorityHigh, "Programming", RecurrenceNone)

		assert.Equal(t, StatusPending, task.Status)
		assert.Equal(t, 0, task.Progress)
		assert.False(t, task.IsCompleted())
		assert.True(t, task.IsValid())
	})
}

func TestTask_IsValid(t *testing.T) {
	due := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		mutate func(*Task)
		want   bool
	}{
		{name: "valid task", mutate: func(task *Task) {}, want: true},
		{name: "empty topic", mutate: func(task *Task) { task.Topic = "" }, want: false},
		{name: "zero due date", mutate: func(task *Task) { task.DueDate = time.Time{} }, want: false},
		{name: "negative progress", mutate: func(task *Task) { task.Progress = -1 }, want: false},
		{name: "progress above 100", mutate: func(task *Task) { task.Progress = 101 }, want: false},
		{name: "unknown status", mutate: func(task *Task) { task.Status = "Paused" }, want: false},
		{name: "unknown priority", mutate: func(task *Task) { task.Priority = "Urgent" }, want: false},
		{name: "unknown recurrence", mutate: func(task *Task) { task.Recurrence = "Yearly" }, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := NewTask("Topic", due, PriorityMedium, "", RecurrenceNone)
			tt.mutate(&task)
			assert.Equal(t, tt.want, task.IsValid())
		})
	}
}
