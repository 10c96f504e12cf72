// Package calendar provides a plain calendar date with no time of day.
package calendar

import (
	"fmt"
	"time"
)

// ISOLayout is the canonical string form of a Date
const ISOLayout = "2006-01-02"

// Date is an immutable year/month/day triple
type Date struct {
	year  int
	month time.Month
	day   int
}

// New builds a date from its components. It fails when the components do not
// describe a real day (Feb 31, month 13, ...) instead of rolling over.
func New(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, fmt.Errorf("invalid date %04d-%02d-%02d", year, int(month), day)
	}
	return Date{year: year, month: month, day: day}, nil
}

// MustNew is New for literals that are known to be valid
func MustNew(year int, month time.Month, day int) Date {
	d, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime returns the calendar date of t in t's location
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// Today returns the local current date
func Today() Date {
	return FromTime(time.Now())
}

// Parse reads a strict YYYY-MM-DD string
func Parse(s string) (Date, error) {
	t, err := time.Parse(ISOLayout, s)
	if err != nil {
		return Date{}, err
	}
	return FromTime(t), nil
}

func (d Date) Year() int { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int { return d.day }
func (d Date) IsZero() bool { return d.year == 0 && d.month == 0 && d.day == 0 }
func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }

// Time returns midnight UTC of the date
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// String returns the ISO form, YYYY-MM-DD
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// Format formats the date with a Go time layout
func (d Date) Format(layout string) string {
	return d.Time().Format(layout)
}

// AddDays moves the date by n days (negative goes back)
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after o
func (d Date) Compare(o Date) int {
	switch {
	case d.year != o.year:
		return cmpInt(d.year, o.year)
	case d.month != o.month:
		return cmpInt(int(d.month), int(o.month))
	default:
		return cmpInt(d.day, o.day)
	}
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }
func (d Date) Equal(o Date) bool { return d == o }

// DaysIn returns the number of days in the given month
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Range returns every date from start to end inclusive, oldest first.
// An end before start yields nil.
func Range(start, end Date) []Date {
	if end.Before(start) {
		return nil
	}
	n := int(end.Time().Sub(start.Time()).Hours()/24) + 1
	dates := make([]Date, 0, n)
	for d := start; !d.After(end); d = d.AddDays(1) {
		dates = append(dates, d)
	}
	return dates
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
