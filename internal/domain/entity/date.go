package entity

import "time"

// DateLayout is the calendar date format used for every date field.
const DateLayout = "2006-01-02"

// NormalizeDate drops the time-of-day component and converts to UTC.
func NormalizeDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}
