package domain

import (
	"fmt"
	"time"
)

// ClockLayout is the storage layout for clock times within a day.
const ClockLayout = "15:04"

// ClockTime is a time of day expressed as minutes since midnight.
type ClockTime int

// ParseClock parses a "HH:MM" string into a ClockTime.
func ParseClock(s string) (ClockTime, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return ClockTime(t.Hour()*60 + t.Minute()), nil
}

// String formats the clock time as "HH:MM".
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// TimeSlot represents an available interval on a specific date. Slots are
// opaque intervals; they are never merged or split.
type TimeSlot struct {
	ID    int64
	Date  time.Time
	Start ClockTime
	End   ClockTime
}

// NewTimeSlot creates a TimeSlot for the given date and interval.
func NewTimeSlot(date time.Time, start, end ClockTime) TimeSlot {
	return TimeSlot{Date: date, Start: start, End: end}
}

// IsValid checks the slot invariant: start strictly before end.
func (s TimeSlot) IsValid() bool {
	return !s.Date.IsZero() && s.Start < s.End
}

// Label returns the display label of the interval, e.g. "09:00 - 09:30".
func (s TimeSlot) Label() string {
	return s.Start.String() + " - " + s.End.String()
}

// Overlaps reports whether the half-open intervals [s.Start, s.End) and
// [other.Start, other.End) intersect. Touching endpoints do not overlap.
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	return s.Start < other.End && other.Start < s.End
}

// IsAvailable reports whether the candidate slot conflicts with none of the
// existing slots. It is a pure predicate over the intervals; callers are
// expected to pass slots belonging to the same date.
func IsAvailable(existing []TimeSlot, candidate TimeSlot) bool {
	for _, slot := range existing {
		if slot.Overlaps(candidate) {
			return false
		}
	}
	return true
}
