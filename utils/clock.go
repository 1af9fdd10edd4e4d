package utils

import "time"

// Clock supplies the current date. Every "today" reference in the service
// (hire date, dismissal date, pay date) goes through a Clock so tests can
// pin a fixed date.
type Clock interface {
	Today() time.Time
}

// SystemClock reads the system clock, truncated to UTC midnight.
type SystemClock struct{}

func (SystemClock) Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// FixedClock always reports the same date.
type FixedClock struct {
	Date time.Time
}

func (c FixedClock) Today() time.Time {
	return c.Date
}
