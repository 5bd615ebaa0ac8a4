package utils

import (
	"fmt"
	"time"
)

// ParseDate parses an ISO 8601 date, accepting either YYYY-MM-DD or a full
// RFC3339 timestamp.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

// FormatDate formats a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatTimestamp formats a time as RFC3339.
func FormatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}
