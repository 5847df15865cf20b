// Package calendar provides small date helpers shared by the services. Dates
// travel through the system as YYYY-MM-DD strings.
package calendar

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date '%s': %w", s, err)
	}
	return t, nil
}

// FormatDate renders a time as a YYYY-MM-DD string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// IsValidDate reports whether s is a well-formed YYYY-MM-DD date.
func IsValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// DaysInMonth returns the number of calendar days in the given month.
// Day 0 of the next month is the last day of this one.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthRange returns the first and last date strings of a year-month. The
// range is inclusive of both endpoints and calendar-correct for short months
// and leap years.
func MonthRange(year, month int) (string, string) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, time.Month(month), DaysInMonth(year, month), 0, 0, 0, 0, time.UTC)
	return FormatDate(first), FormatDate(last)
}

// IsSameDay reports whether two instants fall on the same calendar day.
func IsSameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// Today returns the current date string in the given location.
func Today(loc *time.Location) string {
	return FormatDate(time.Now().In(loc))
}
