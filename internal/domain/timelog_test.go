package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTimeLog(t *testing.T) {
	t.Run("should derive spent seconds from the interval", func(t *testing.T) {
		start := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

		log := NewTimeLog(7, start, start.Add(90*time.Minute))

		assert.Equal(t, int64(5400), log.SpentSeconds)
		assert.Equal(t, 90*time.Minute, log.Duration())
		assert.True(t, log.IsValid())
	})

	t.Run("should be invalid when the interval is reversed", func(t *testing.T) {
		start := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

		log := TimeLog{TaskID: 1, StartTime: start, EndTime: start.Add(-time.Minute)}

		assert.False(t, log.IsValid())
	})
}

func TestFormatSpent(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{seconds: 0, want: "00:00:00"},
		{seconds: 59, want: "00:00:59"},
		{seconds: 61, want: "00:01:01"},
		{seconds: 3600, want: "01:00:00"},
		{seconds: 7261, want: "02:01:01"},
		{seconds: 360000, want: "100:00:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSpent(tt.seconds))
	}
}
