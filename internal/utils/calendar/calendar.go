package calendar

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a UTC-midnight time.Time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Normalize truncates a time to its UTC calendar date.
func Normalize(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current UTC calendar date.
func Today() time.Time {
	return Normalize(time.Now())
}

// WeekStart returns the Sunday on or before the given date, UTC-normalized.
func WeekStart(t time.Time) time.Time {
	d := Normalize(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// WeekEnd returns the Saturday closing the week that starts at weekStart.
func WeekEnd(weekStart time.Time) time.Time {
	return AddDays(weekStart, 6)
}

// AddDays offsets a date by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return Normalize(t).AddDate(0, 0, n)
}

// DaysBetween returns the whole-day delta from a to b.
func DaysBetween(a, b time.Time) int {
	return int(Normalize(b).Sub(Normalize(a)).Hours() / 24)
}

// InRange reports whether date falls within [start, end], date-only, inclusive.
func InRange(date, start, end time.Time) bool {
	d := Normalize(date)
	return !d.Before(Normalize(start)) && !d.After(Normalize(end))
}

// IsSunday reports whether the date is a week start.
func IsSunday(t time.Time) bool {
	return Normalize(t).Weekday() == time.Sunday
}

// SameDate reports whether two times fall on the same UTC calendar date.
func SameDate(a, b time.Time) bool {
	return Normalize(a).Equal(Normalize(b))
}
