// Package clock provides an injectable time source so that "today", the
// current week's Sunday and day arithmetic are pure functions of an explicit
// reference time in UTC.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// Real reads the system clock.
type Real struct{}

func (Real) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant. Meant for tests.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}

// DateUTC truncates t to midnight UTC of its calendar day.
func DateUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the most recent Sunday on or before t, at midnight UTC.
func WeekStart(t time.Time) time.Time {
	d := DateUTC(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// DaysBetween returns the number of whole calendar days from 'from' to 'to'.
// Negative when 'to' is before 'from'.
func DaysBetween(from, to time.Time) int {
	return int(DateUTC(to).Sub(DateUTC(from)) / (24 * time.Hour))
}

// DayName returns the English weekday name for a 0-6 index (0 = Sunday).
func DayName(index int) string {
	names := []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	if index < 0 || index > 6 {
		return "Unknown"
	}
	return names[index]
}
