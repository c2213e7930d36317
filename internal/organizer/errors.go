package organizer

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDate     = errors.New("invalid calendar date")
	ErrPastDate        = errors.New("event date is in the past")
	ErrOutsideWindow   = errors.New("event date is outside the booking window")
	ErrInvalidSlot     = errors.New("invalid time slot")
	ErrInvalidLocation = errors.New("invalid location")
	ErrInvalidContact  = errors.New("invalid contact")
	ErrInvalidDuration = errors.New("duration is not a number")
	ErrDurationRange   = errors.New("duration out of range")
	ErrConflict        = errors.New("event already booked")
	ErrNotFound        = errors.New("event not found")
	ErrInvalidCommand  = errors.New("invalid command")
	ErrMissingArgs     = errors.New("missing arguments")
)

// DateError ties a date failure to the date as the user should see it.
type DateError struct {
	Date string
	Err  error
}

func (e *DateError) Error() string { return e.Date + ": " + e.Err.Error() }
func (e *DateError) Unwrap() error { return e.Err }

// message renders err as the single line shown to the user.
func (o *Organizer) message(err error) string {
	var de *DateError
	if errors.As(err, &de) {
		switch {
		case errors.Is(de.Err, ErrPastDate):
			return de.Date + ": Event date must be a future date!"
		case errors.Is(de.Err, ErrOutsideWindow):
			return fmt.Sprintf("%s: Event date must be within %d months!", de.Date, windowMonths)
		default:
			return de.Date + ": Invalid calendar date!"
		}
	}

	switch {
	case errors.Is(err, ErrInvalidSlot):
		return "Invalid time slot!"
	case errors.Is(err, ErrInvalidLocation):
		return "Invalid location!"
	case errors.Is(err, ErrInvalidContact):
		return "Invalid contact information!"
	case errors.Is(err, ErrInvalidDuration):
		return "Invalid event duration!"
	case errors.Is(err, ErrConflict):
		return "The event is already on the calendar."
	case errors.Is(err, ErrDurationRange):
		return fmt.Sprintf("Event duration must be at least %d minutes and at most %d minutes",
			o.minDuration, o.maxDuration)
	case errors.Is(err, ErrNotFound):
		return "Cannot remove; event is not in the calendar!"
	default:
		return err.Error()
	}
}
