// Package store keeps the booked events in memory. The store does not
// validate what it is given and does not reject duplicates; the organizer
// owns those rules.
package store

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"evtsched/internal/model"
)

const (
	DefaultInitialCapacity = 4
	DefaultGrowthIncrement = 4
)

const (
	headerInOrder    = "* Event calendar *"
	headerByDate     = "* Event calendar by event date and start time *"
	headerByCampus   = "* Event calendar by campus and building *"
	headerDepartment = "* Event calendar by department *"
	footer           = "* end of event calendar *"
	emptyMessage     = "Event calendar is empty!"
)

// EventStore is an ordered, growable list of events. Capacity grows by a
// fixed increment and the live events always occupy slots [0, Len()).
type EventStore struct {
	slots  []*model.Event
	count  int
	growBy int
}

type Option func(*EventStore)

// WithInitialCapacity sets how many slots are allocated up front.
func WithInitialCapacity(n int) Option {
	return func(s *EventStore) {
		if n > 0 {
			s.slots = make([]*model.Event, n)
		}
	}
}

// WithGrowthIncrement sets how many slots are added when the store is full.
func WithGrowthIncrement(n int) Option {
	return func(s *EventStore) {
		if n > 0 {
			s.growBy = n
		}
	}
}

func New(opts ...Option) *EventStore {
	s := &EventStore{
		slots:  make([]*model.Event, DefaultInitialCapacity),
		growBy: DefaultGrowthIncrement,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Len is the number of stored events.
func (s *EventStore) Len() int { return s.count }

// Cap is the number of allocated slots.
func (s *EventStore) Cap() int { return len(s.slots) }

// IsEmpty looks at the first slot; Remove compacts so a hole never sits
// at index 0 while later slots are filled.
func (s *EventStore) IsEmpty() bool {
	return s.slots[0] == nil
}

func (s *EventStore) grow() {
	next := make([]*model.Event, len(s.slots)+s.growBy)
	copy(next, s.slots[:s.count])
	s.slots = next
}

// Add appends e, growing first when every slot is taken.
func (s *EventStore) Add(e *model.Event) {
	if s.count >= len(s.slots) {
		s.grow()
	}
	s.slots[s.count] = e
	s.count++
}

func (s *EventStore) find(e *model.Event) int {
	for i := 0; i < s.count; i++ {
		if s.slots[i].Equal(e) {
			return i
		}
	}
	return -1
}

// Remove deletes the first event with the same identity as e, shifting the
// rest left to keep their order. It reports whether anything was removed.
func (s *EventStore) Remove(e *model.Event) bool {
	i := s.find(e)
	if i < 0 {
		return false
	}
	copy(s.slots[i:], s.slots[i+1:s.count])
	s.count--
	s.slots[s.count] = nil
	return true
}

// Contains reports whether an event with the same identity as e is stored.
func (s *EventStore) Contains(e *model.Event) bool {
	return s.find(e) >= 0
}

// All yields the stored events in their current order. The store must not
// be modified during iteration.
func (s *EventStore) All() iter.Seq2[int, *model.Event] {
	return func(yield func(int, *model.Event) bool) {
		for i := 0; i < s.count; i++ {
			if !yield(i, s.slots[i]) {
				return
			}
		}
	}
}

// Events returns a copy of the stored events in their current order.
func (s *EventStore) Events() []*model.Event {
	return slices.Clone(s.slots[:s.count])
}

// SortByDate reorders the store by date, then slot. Ties keep their
// relative order.
func (s *EventStore) SortByDate() {
	slices.SortStableFunc(s.slots[:s.count], model.Compare)
}

// SortByCampus reorders the store by campus, then building.
func (s *EventStore) SortByCampus() {
	slices.SortStableFunc(s.slots[:s.count], func(a, b *model.Event) int {
		if c := strings.Compare(a.Location.Campus, b.Location.Campus); c != 0 {
			return c
		}
		return strings.Compare(a.Location.Building, b.Location.Building)
	})
}

// SortByDepartment reorders the store by department display name.
func (s *EventStore) SortByDepartment() {
	slices.SortStableFunc(s.slots[:s.count], func(a, b *model.Event) int {
		return strings.Compare(a.Contact.DepartmentName(), b.Contact.DepartmentName())
	})
}

// Print writes the events in their current order.
func (s *EventStore) Print(w io.Writer) error {
	return s.print(w, headerInOrder)
}

// PrintByDate sorts by date and slot, then prints. The sorted order is kept.
func (s *EventStore) PrintByDate(w io.Writer) error {
	s.SortByDate()
	return s.print(w, headerByDate)
}

// PrintByCampus sorts by campus and building, then prints.
func (s *EventStore) PrintByCampus(w io.Writer) error {
	s.SortByCampus()
	return s.print(w, headerByCampus)
}

// PrintByDepartment sorts by department name, then prints.
func (s *EventStore) PrintByDepartment(w io.Writer) error {
	s.SortByDepartment()
	return s.print(w, headerDepartment)
}

func (s *EventStore) print(w io.Writer, header string) error {
	if s.IsEmpty() {
		_, err := fmt.Fprintln(w, emptyMessage)
		return err
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for _, e := range s.All() {
		if _, err := fmt.Fprintln(w, e); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, footer)
	return err
}
