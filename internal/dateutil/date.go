// Package dateutil provides a day-granularity date value used for due
// date comparison and monthly bucketing.  Time of day is never part of
// any comparison.
package dateutil

import (
	"fmt"
	"time"
)

// Format is the ISO-8601 day format used everywhere dates are stored.
const Format = "2006-01-02"

const monthFormat = "2006-01"

var monthNames = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Date is a calendar day with no time component.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current calendar day.
func Today() Date { return New(time.Now().Date()) }

// Parse reads a strict YYYY-MM-DD string.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Format, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, want format %s: %w", s, Format, err)
	}
	return New(t.Date()), nil
}

// MustParse is like Parse but panics on error.  Intended for tests and
// literals.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseMonth reads a strict YYYY-MM string and returns its year and month.
func ParseMonth(s string) (int, time.Month, error) {
	t, err := time.Parse(monthFormat, s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q, want format %s: %w", s, monthFormat, err)
	}
	return t.Year(), t.Month(), nil
}

// time returns the canonical midnight-UTC instant of the day.
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns the calendar year.
func (d Date) Year() int { return d.y }

// Month returns the calendar month.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Before reports whether d falls strictly before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// Equal reports whether d and x are the same calendar day.
func (d Date) Equal(x Date) bool { return d == x }

// SameMonth reports whether d and x fall in the same calendar month of
// the same year.
func (d Date) SameMonth(x Date) bool { return d.y == x.y && d.m == x.m }

// InMonth reports whether d falls in the given year and month.
func (d Date) InMonth(year int, month time.Month) bool { return d.y == year && d.m == month }

// String formats the date as YYYY-MM-DD.
func (d Date) String() string { return d.time().Format(Format) }

// MonthLabel renders a chart bucket label such as "Jan '24".
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s '%02d", monthNames[month-1], year%100)
}
