// Package valueobject contains domain value objects for the ERP system.
package valueobject

import (
	"errors"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ErrEndBeforeStart is returned when a range ends before it starts.
var ErrEndBeforeStart = errors.New("end date is before start date")

// DateRange is an inclusive range of calendar days. Both bounds are
// normalized to midnight UTC.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a DateRange from two dates, dropping their clock part.
func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: day(start), End: day(end)}
	if r.End.Before(r.Start) {
		return DateRange{}, ErrEndBeforeStart
	}
	return r, nil
}

// ParseDateRange parses two YYYY-MM-DD strings into a DateRange.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return DateRange{}, err
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(s, e)
}

// MonthOf returns the calendar month containing t.
func MonthOf(t time.Time) DateRange {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return DateRange{Start: start, End: start.AddDate(0, 1, -1)}
}

// Contains reports whether the calendar day of t lies inside the range.
func (r DateRange) Contains(t time.Time) bool {
	d := day(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Days returns the number of calendar days in the range, bounds included.
func (r DateRange) Days() int {
	return DaysBetween(r.Start, r.End) + 1
}

// EndExclusive returns midnight of the day after End, for half-open queries.
func (r DateRange) EndExclusive() time.Time {
	return r.End.AddDate(0, 0, 1)
}

// String renders the range as "start..end".
func (r DateRange) String() string {
	return r.Start.Format(DateLayout) + ".." + r.End.Format(DateLayout)
}

// DaysBetween returns the number of whole calendar days from a to b, exact for
// any span time.Time can hold.
func DaysBetween(a, b time.Time) int {
	const secondsPerDay = 24 * 60 * 60
	return int((day(b).Unix() - day(a).Unix()) / secondsPerDay)
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
