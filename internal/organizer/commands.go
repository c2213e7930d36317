package organizer

import (
	"strconv"

	"evtsched/internal/catalog"
	"evtsched/internal/date"
	appLog "evtsched/internal/log"
	"evtsched/internal/model"
)

// tokens hands out command arguments one at a time so that validation can
// stop at the first bad one before later arguments are looked at.
type tokens []string

func (t *tokens) next() (string, error) {
	if len(*t) == 0 {
		return "", ErrMissingArgs
	}
	s := (*t)[0]
	*t = (*t)[1:]
	return s, nil
}

// Add validates an A command's arguments and books the event. Checks run in
// order and stop at the first failure; the store is only touched once all
// of them pass:
//
//  1. date parses and is a real calendar date
//  2. date is inside the booking window
//  3. slot and location exist
//  4. department exists and the email matches it
//  5. duration is a number
//  6. nothing is booked at the same date, slot and location
//  7. duration is within the configured range
func (o *Organizer) Add(args []string) (*model.Event, error) {
	tok := tokens(args)

	d, err := o.nextDate(&tok)
	if err != nil {
		return nil, err
	}
	slot, loc, err := nextSlotAndLocation(&tok)
	if err != nil {
		return nil, err
	}

	dept, err := tok.next()
	if err != nil {
		return nil, err
	}
	email, err := tok.next()
	if err != nil {
		return nil, err
	}
	contact := model.NewContact(dept, email)
	if !contact.IsValid() {
		return nil, ErrInvalidContact
	}

	text, err := tok.next()
	if err != nil {
		return nil, err
	}
	duration, err := strconv.Atoi(text)
	if err != nil {
		return nil, ErrInvalidDuration
	}

	e := &model.Event{
		Date:     d,
		Slot:     slot,
		Location: loc,
		Contact:  contact,
		Duration: duration,
	}
	if o.conflicts(e) {
		return nil, ErrConflict
	}
	if duration < o.minDuration || duration > o.maxDuration {
		return nil, ErrDurationRange
	}

	e.UID = o.newUID()
	o.store.Add(e)
	return e, nil
}

// Remove validates an R command's arguments and cancels the matching
// booking. Only date, slot and location are needed to identify it.
func (o *Organizer) Remove(args []string) error {
	tok := tokens(args)

	d, err := o.nextDate(&tok)
	if err != nil {
		return err
	}
	slot, loc, err := nextSlotAndLocation(&tok)
	if err != nil {
		return err
	}

	probe := &model.Event{Date: d, Slot: slot, Location: loc}
	if !o.store.Remove(probe) {
		return ErrNotFound
	}
	appLog.Debug("event removed", "date", d, "slot", slot.Key, "location", loc.Key)
	return nil
}

// conflicts scans every booking for one with e's identity.
func (o *Organizer) conflicts(e *model.Event) bool {
	for _, existing := range o.store.All() {
		if existing.Equal(e) {
			return true
		}
	}
	return false
}

func (o *Organizer) nextDate(tok *tokens) (date.Date, error) {
	text, err := tok.next()
	if err != nil {
		return date.Date{}, err
	}

	d, err := date.Parse(text)
	if err != nil {
		appLog.Warn("date parse failed", "text", text, "err", err)
		return date.Date{}, &DateError{Date: text, Err: ErrInvalidDate}
	}
	if !d.IsValid() {
		return date.Date{}, &DateError{Date: d.String(), Err: ErrInvalidDate}
	}
	if err := checkWindow(d, date.Today(o.clock)); err != nil {
		return date.Date{}, &DateError{Date: d.String(), Err: err}
	}
	return d, nil
}

func nextSlotAndLocation(tok *tokens) (catalog.Slot, catalog.Location, error) {
	slotName, err := tok.next()
	if err != nil {
		return catalog.Slot{}, catalog.Location{}, err
	}
	slot, ok := catalog.LookupSlot(slotName)
	if !ok {
		return catalog.Slot{}, catalog.Location{}, ErrInvalidSlot
	}

	locName, err := tok.next()
	if err != nil {
		return catalog.Slot{}, catalog.Location{}, err
	}
	loc, ok := catalog.LookupLocation(locName)
	if !ok {
		return catalog.Slot{}, catalog.Location{}, ErrInvalidLocation
	}
	return slot, loc, nil
}
