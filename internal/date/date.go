// Package date implements the month/day/year calendar dates used for
// event bookings.
package date

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"evtsched/internal/clock"
)

const (
	monthsPerYear = 12

	quadrennial      = 4
	centennial       = 100
	quatercentennial = 400
)

// ErrMalformed is returned by Parse when the text is not three numeric
// fields separated by "/".
var ErrMalformed = errors.New("malformed date")

// Date is an immutable calendar date. The zero value is not a valid date.
type Date struct {
	year  int
	month int
	day   int
}

// New builds a Date without validating it; call IsValid before use.
func New(year, month, day int) Date {
	return Date{year: year, month: month, day: day}
}

// Parse reads text in m/d/yyyy form. Leading zeros and trailing slashes
// are accepted. A successful parse does not imply a valid date.
func Parse(text string) (Date, error) {
	parts := strings.Split(text, "/")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("date: %q has %d fields: %w", text, len(parts), ErrMalformed)
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("date: %q field %d: %w", text, i+1, ErrMalformed)
		}
		nums[i] = n
	}

	return Date{month: nums[0], day: nums[1], year: nums[2]}, nil
}

// FromTime truncates t to its calendar date in t's location.
func FromTime(t time.Time) Date {
	return Date{year: t.Year(), month: int(t.Month()), day: t.Day()}
}

// Today is the current date according to clk.
func Today(clk clock.Clock) Date {
	return FromTime(clk.Now())
}

func (d Date) Year() int  { return d.year }
func (d Date) Month() int { return d.month }
func (d Date) Day() int   { return d.day }

// IsValid reports whether d names a real day of the Gregorian calendar.
func (d Date) IsValid() bool {
	if d.month < 1 || d.month > monthsPerYear || d.day < 1 || d.year < 0 {
		return false
	}
	return d.day <= DaysInMonth(d.year, d.month)
}

// Compare orders dates by year, then month, then day, returning -1, 0 or 1.
func Compare(a, b Date) int {
	switch {
	case a.year != b.year:
		return sign(a.year - b.year)
	case a.month != b.month:
		return sign(a.month - b.month)
	default:
		return sign(a.day - b.day)
	}
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return Compare(d, other) < 0
}

// Time returns the instant hour:minute on d in loc.
func (d Date) Time(hour, minute int, loc *time.Location) time.Time {
	return time.Date(d.year, time.Month(d.month), d.day, hour, minute, 0, 0, loc)
}

// String formats d without zero padding, e.g. "2/9/2027".
func (d Date) String() string {
	return strconv.Itoa(d.month) + "/" + strconv.Itoa(d.day) + "/" + strconv.Itoa(d.year)
}

// IsLeapYear applies the Gregorian rule: every 4th year, except centuries
// not divisible by 400.
func IsLeapYear(year int) bool {
	return year%quatercentennial == 0 || (year%centennial != 0 && year%quadrennial == 0)
}

// DaysInMonth returns the number of days in month (1-12) of year, or 0 for
// an out-of-range month.
func DaysInMonth(year, month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	default:
		return 0
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
