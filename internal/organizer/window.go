package organizer

import "evtsched/internal/date"

const (
	windowMonths  = 6
	monthsPerYear = 12
)

// checkWindow accepts dates from today up to windowMonths ahead. The
// boundary is decided month by month: a date in the limit month passes
// only up to today's day of month, and the limit month wraps into next
// year with a plain modulo.
func checkWindow(d, today date.Date) error {
	if d.Before(today) {
		return ErrPastDate
	}

	limit := today.Month() + windowMonths
	thisYear := d.Year() == today.Year()
	nextYear := d.Year() == today.Year()+1

	switch {
	case thisYear && d.Month() == limit && d.Day() > today.Day():
	case thisYear && d.Month() > limit:
	case nextYear && d.Month() == limit%monthsPerYear && d.Day() > today.Day():
	case nextYear && d.Month() > limit%monthsPerYear:
	case d.Year() > today.Year()+1:
	default:
		return nil
	}
	return ErrOutsideWindow
}
