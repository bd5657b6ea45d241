package game

import (
	"fmt"
	"time"
)

// Date is an ISO calendar date (YYYY-MM-DD) with no time component.
// The format orders lexicographically, so < and > compare calendar order.
type Date string

const dateLayout = "2006-01-02"

// NewDate truncates t to its calendar day in local time.
func NewDate(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

// ParseDate validates s as an ISO calendar date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", s, err)
	}
	return NewDate(t), nil
}

// Time returns midnight local time of the date. Invalid dates yield the zero
// time; callers that validated via ParseDate never see that.
func (d Date) Time() time.Time {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// AddDays returns the date n calendar days later (or earlier for negative n).
func (d Date) AddDays(n int) Date {
	return NewDate(d.Time().AddDate(0, 0, n))
}

// Weekday returns the short weekday label, e.g. "Mon".
func (d Date) Weekday() string {
	return d.Time().Format("Mon")
}
