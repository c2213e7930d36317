package date_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evtsched/internal/clock"
	"evtsched/internal/date"
)

func TestParse(t *testing.T) {
	t.Run("accepts zero padded fields", func(t *testing.T) {
		d, err := date.Parse("09/05/2027")
		require.NoError(t, err)
		assert.Equal(t, 2027, d.Year())
		assert.Equal(t, 9, d.Month())
		assert.Equal(t, 5, d.Day())
		assert.Equal(t, "9/5/2027", d.String())
	})

	t.Run("drops trailing empty fields", func(t *testing.T) {
		for _, text := range []string{"11/2/2026/", "11/2/2026//"} {
			d, err := date.Parse(text)
			require.NoError(t, err, text)
			assert.Equal(t, "11/2/2026", d.String())
		}
	})

	for _, text := range []string{"", "/", "12/2027", "1/2/3/4", "a/1/2027", "1//2027", "/1/1/2027", "1/1/20x7"} {
		t.Run("rejects "+text, func(t *testing.T) {
			d, err := date.Parse(text)
			assert.ErrorIs(t, err, date.ErrMalformed)
			assert.False(t, d.IsValid())
		})
	}
}

func TestIsValid(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"2/29/2011", false},
		{"2/29/2012", true},
		{"2/28/2011", true},
		{"2/29/1900", false},
		{"2/29/2000", true},
		{"13/1/2011", false},
		{"0/1/2011", false},
		{"1/0/2011", false},
		{"1/31/2011", true},
		{"4/31/2011", false},
		{"6/30/2011", true},
		{"9/31/2011", false},
		{"11/31/2011", false},
		{"12/31/2011", true},
		{"1/1/-1", false},
	}
	for _, tc := range cases {
		d, err := date.Parse(tc.text)
		require.NoError(t, err, tc.text)
		assert.Equal(t, tc.want, d.IsValid(), tc.text)
	}
}

func TestIsLeapYear(t *testing.T) {
	for _, y := range []int{2000, 2400, 2012, 2016} {
		assert.True(t, date.IsLeapYear(y), y)
	}
	for _, y := range []int{1900, 2100, 2011, 2013} {
		assert.False(t, date.IsLeapYear(y), y)
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, date.DaysInMonth(2024, 2))
	assert.Equal(t, 28, date.DaysInMonth(2026, 2))
	assert.Equal(t, 30, date.DaysInMonth(2026, 11))
	assert.Equal(t, 31, date.DaysInMonth(2026, 8))
	assert.Equal(t, 0, date.DaysInMonth(2026, 13))
}

func TestCompare(t *testing.T) {
	a := date.New(2026, 10, 19)

	assert.Equal(t, 0, date.Compare(a, date.New(2026, 10, 19)))
	assert.Equal(t, -1, date.Compare(a, date.New(2027, 1, 1)))
	assert.Equal(t, 1, date.Compare(a, date.New(2026, 9, 30)))
	assert.Equal(t, -1, date.Compare(a, date.New(2026, 10, 20)))
	assert.True(t, a.Before(date.New(2026, 10, 20)))
	assert.False(t, a.Before(a))
}

func TestToday(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	clk := clock.NewFixed(time.Date(2026, 10, 19, 23, 30, 0, 0, loc))

	assert.Equal(t, date.New(2026, 10, 19), date.Today(clk))
}

func TestTime(t *testing.T) {
	got := date.New(2026, 11, 2).Time(14, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 11, 2, 14, 0, 0, 0, time.UTC), got)
}
