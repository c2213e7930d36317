package model

import (
	"fmt"

	"evtsched/internal/catalog"
	"evtsched/internal/date"
)

// Event is one booking. It is never modified after the organizer accepts
// it; removal goes through its identity (Date, Slot, Location).
type Event struct {
	// UID is assigned when the event is booked and is exported as the
	// iCalendar UID. It takes no part in equality.
	UID string

	Date     date.Date
	Slot     catalog.Slot
	Location catalog.Location
	Contact  Contact

	// Duration is in minutes.
	Duration int
}

// Equal reports whether e and other occupy the same room at the same
// date and slot. Contact, duration and UID are ignored.
func (e *Event) Equal(other *Event) bool {
	if e == nil || other == nil {
		return e == other
	}
	return date.Compare(e.Date, other.Date) == 0 &&
		e.Slot.Key == other.Slot.Key &&
		e.Location.Key == other.Location.Key
}

// Compare orders events by date, then slot.
func Compare(a, b *Event) int {
	if c := date.Compare(a.Date, b.Date); c != 0 {
		return c
	}
	return catalog.CompareSlots(a.Slot, b.Slot)
}

// StartTime and EndTime are the printable clock readings of the booking.
func (e *Event) StartTime() string { return catalog.StartTime(e.Slot) }
func (e *Event) EndTime() string   { return catalog.EndTime(e.Slot, e.Duration) }

func (e *Event) String() string {
	return fmt.Sprintf("[Event Date: %s] [Start: %s] [End: %s] @%s (%s, %s) [Contact: %s, %s]",
		e.Date,
		e.StartTime(),
		e.EndTime(),
		e.Location.Key,
		e.Location.Building,
		e.Location.Campus,
		e.Contact.DepartmentName(),
		e.Contact.Email,
	)
}
