package catalog

import "fmt"

const (
	minutesPerHour = 60

	// Hours in [amOpen, amClose) print as "am"; every other hour prints as
	// "pm". Slot hours are written on a 12-hour dial.
	amOpen  = 10
	amClose = 12
)

// Slot is a named start time. Order is the slot's rank within the day and
// is what event sorting compares.
type Slot struct {
	Key    string
	Hour   int
	Minute int
	Order  int
}

var slots = []Slot{
	{Key: "MORNING", Hour: 10, Minute: 30, Order: 0},
	{Key: "AFTERNOON", Hour: 2, Minute: 0, Order: 1},
	{Key: "EVENING", Hour: 6, Minute: 30, Order: 2},
}

// LookupSlot finds a slot by name, ignoring case.
func LookupSlot(name string) (Slot, bool) {
	return lookup(slots, func(s Slot) string { return s.Key }, name)
}

// Slots lists every slot in day order.
func Slots() []Slot {
	return append([]Slot(nil), slots...)
}

// CompareSlots orders slots by their position in the day.
func CompareSlots(a, b Slot) int {
	return a.Order - b.Order
}

// Meridiem returns "am" or "pm" for an hour as printed by the scheduler.
func Meridiem(hour int) string {
	if hour >= amOpen && hour < amClose {
		return "am"
	}
	return "pm"
}

// StartTime formats the slot start, e.g. "10:30am" or "2:00pm".
func StartTime(s Slot) string {
	return fmt.Sprintf("%d:%02d%s", s.Hour, s.Minute, Meridiem(s.Hour))
}

// EndTime formats the time duration minutes after the slot start. Minutes
// carry into the hour; the hour is not wrapped.
func EndTime(s Slot, duration int) string {
	total := s.Minute + duration
	hour := s.Hour + total/minutesPerHour
	return fmt.Sprintf("%d:%02d%s", hour, total%minutesPerHour, Meridiem(hour))
}

// Clock24 converts the slot start into a 24-hour clock reading, using the
// same am/pm rule that StartTime prints.
func Clock24(s Slot) (hour, minute int) {
	if Meridiem(s.Hour) == "pm" && s.Hour < amClose {
		return s.Hour + amClose, s.Minute
	}
	return s.Hour, s.Minute
}
