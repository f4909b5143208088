package sqlite

import (
	"time"
)

const dateLayout = "2006-01-02"

// FormatDateForDB formats a time.Time as a "2006-01-02" date string.
func FormatDateForDB(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDateFromDB parses a "2006-01-02" date string from the database.
func ParseDateFromDB(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// FormatTimeForDB formats a time.Time value as RFC3339 string for
// consistent database storage.
func FormatTimeForDB(t time.Time) string {
	return t.Format(time.RFC3339)
}

// ParseTimeFromDB parses an RFC3339 formatted time string from the database.
func ParseTimeFromDB(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
