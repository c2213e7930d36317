package ics

import (
	"errors"
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"

	"evtsched/internal/catalog"
	"evtsched/internal/model"
	appLog "evtsched/internal/log"
)

const DefaultProdID = "-//evtsched//Event Organizer//EN"

// RenderConfig controls how booked events are turned into a VCALENDAR.
type RenderConfig struct {
	// ProdID is written as PRODID. Empty means DefaultProdID.
	ProdID string

	// Location is the zone the slot wall-clock times are interpreted in.
	// If nil, time.Local is used.
	Location *time.Location

	// Now is written as DTSTAMP on every VEVENT.
	Now time.Time
}

// Render writes events as an iCalendar document to w, one VEVENT per
// booking, in the order given.
//
//   - DTSTART is the slot start on the event date in cfg.Location.
//   - DTEND is DTSTART plus the duration.
//   - ORGANIZER is the contact email with the department as CN.
//   - CATEGORIES carries the department key so feeds can be filtered.
func Render(w io.Writer, events []*model.Event, cfg RenderConfig) error {
	if w == nil {
		return errors.New("ics: nil writer")
	}
	if cfg.ProdID == "" {
		cfg.ProdID = DefaultProdID
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(cfg.ProdID)
	cal.SetXWRTimezone(cfg.Location.String())

	for _, e := range events {
		addEvent(cal, e, cfg)
	}

	if err := cal.SerializeTo(w); err != nil {
		appLog.Error("ics serialize failed", err, "event_count", len(events))
		return err
	}
	appLog.Debug("ics render completed", "event_count", len(events))
	return nil
}

func addEvent(cal *ical.Calendar, e *model.Event, cfg RenderConfig) {
	hour, minute := catalog.Clock24(e.Slot)
	start := e.Date.Time(hour, minute, cfg.Location)
	end := start.Add(time.Duration(e.Duration) * time.Minute)

	ve := cal.AddEvent(uid(e))
	ve.SetDtStampTime(cfg.Now)
	ve.SetStartAt(start)
	ve.SetEndAt(end)
	ve.SetSummary(fmt.Sprintf("%s event", e.Contact.DepartmentName()))
	ve.SetLocation(fmt.Sprintf("%s (%s, %s)", e.Location.Key, e.Location.Building, e.Location.Campus))
	ve.SetDescription(e.String())
	if e.Contact.Email != "" {
		ve.SetOrganizer("mailto:"+e.Contact.Email, ical.WithCN(e.Contact.DepartmentName()))
	}
	if e.Contact.Department != nil {
		ve.SetProperty(ical.ComponentPropertyCategories, e.Contact.Department.Key)
	}
}

// uid falls back to the booking identity for events that were never
// assigned one.
func uid(e *model.Event) string {
	if e.UID != "" {
		return e.UID
	}
	return fmt.Sprintf("%d%02d%02d-%s-%s@evtsched",
		e.Date.Year(), e.Date.Month(), e.Date.Day(), e.Slot.Key, e.Location.Key)
}
