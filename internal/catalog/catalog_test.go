package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupIgnoresCase(t *testing.T) {
	s, ok := LookupSlot("afternoon")
	require.True(t, ok)
	assert.Equal(t, "AFTERNOON", s.Key)

	l, ok := LookupLocation("be_aud")
	require.True(t, ok)
	assert.Equal(t, "Beck Hall", l.Building)
	assert.Equal(t, "Livingston", l.Campus)

	d, ok := LookupDepartment("Cs")
	require.True(t, ok)
	assert.Equal(t, "Computer Science", d.Name)

	_, ok = LookupSlot("NIGHT")
	assert.False(t, ok)
	_, ok = LookupLocation("HLL115")
	assert.False(t, ok)
	_, ok = LookupDepartment("PHYS")
	assert.False(t, ok)
}

func TestSlotsAreInDayOrder(t *testing.T) {
	all := Slots()
	require.Len(t, all, 3)
	for i := 1; i < len(all); i++ {
		assert.Negative(t, CompareSlots(all[i-1], all[i]))
	}
}

func TestMeridiem(t *testing.T) {
	assert.Equal(t, "am", Meridiem(10))
	assert.Equal(t, "am", Meridiem(11))
	assert.Equal(t, "pm", Meridiem(12))
	assert.Equal(t, "pm", Meridiem(2))
	assert.Equal(t, "pm", Meridiem(9))
}

func TestStartAndEndTime(t *testing.T) {
	morning, _ := LookupSlot("MORNING")
	afternoon, _ := LookupSlot("AFTERNOON")
	evening, _ := LookupSlot("EVENING")

	cases := []struct {
		slot      Slot
		duration  int
		wantStart string
		wantEnd   string
	}{
		{morning, 30, "10:30am", "11:00am"},
		{morning, 60, "10:30am", "11:30am"},
		{morning, 90, "10:30am", "12:00pm"},
		{afternoon, 45, "2:00pm", "2:45pm"},
		{afternoon, 120, "2:00pm", "4:00pm"},
		{evening, 120, "6:30pm", "8:30pm"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.wantStart, StartTime(tc.slot))
		assert.Equal(t, tc.wantEnd, EndTime(tc.slot, tc.duration), "%s+%d", tc.slot.Key, tc.duration)
	}
}

func TestClock24(t *testing.T) {
	for key, want := range map[string][2]int{
		"MORNING":   {10, 30},
		"AFTERNOON": {14, 0},
		"EVENING":   {18, 30},
	} {
		s, _ := LookupSlot(key)
		h, m := Clock24(s)
		assert.Equal(t, want, [2]int{h, m}, key)
	}
}

func TestTablesAreCopies(t *testing.T) {
	locs := Locations()
	locs[0].Campus = "changed"
	assert.Equal(t, "Busch", Locations()[0].Campus)
	assert.Len(t, Departments(), 5)
}
