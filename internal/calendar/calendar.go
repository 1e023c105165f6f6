// Package calendar provides day-granularity date arithmetic shared by the
// availability and admission code. All dates are normalized to midnight UTC so
// that map keys and comparisons never depend on the caller's location.
package calendar

import (
	"errors"
	"time"
)

// Layout is the wire format for calendar dates.
const Layout = "2006-01-02"

// ErrEmptyRange is returned when a range's end does not come after its start.
var ErrEmptyRange = errors.New("calendar: end date must be after start date")

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current UTC date at day granularity.
func Today() time.Time {
	return Day(time.Now().UTC())
}

// Parse parses a YYYY-MM-DD string into a normalized date.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}

// Format renders a date back to YYYY-MM-DD.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Enumerate returns every date in the half-open range [start, end), one entry
// per day. It fails with ErrEmptyRange when end <= start.
func Enumerate(start, end time.Time) ([]time.Time, error) {
	start, end = Day(start), Day(end)
	if !end.After(start) {
		return nil, ErrEmptyRange
	}
	days := make([]time.Time, 0, DayCount(start, end))
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days, nil
}

// DayCount returns the number of days in [start, end). Zero or negative
// spans yield 0.
func DayCount(start, end time.Time) int {
	start, end = Day(start), Day(end)
	if !end.After(start) {
		return 0
	}
	return int(end.Sub(start).Hours() / 24)
}

// Overlaps reports whether the half-open ranges [aStart, aEnd) and
// [bStart, bEnd) share at least one day.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
