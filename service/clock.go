package service

import (
	"time"

	"github.com/ariebrainware/dentist-api/model"
)

// Clock gives services the current instant and the clinic's calendar.
type Clock struct {
	Location *time.Location
	Now      func() time.Time
}

// NewClock returns a Clock for the clinic time zone loc.
func NewClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return Clock{Location: loc, Now: time.Now}
}

func (c Clock) loc() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// Instant returns the current instant in UTC.
func (c Clock) Instant() time.Time {
	if c.Now == nil {
		return time.Now().UTC()
	}
	return c.Now().UTC()
}

// Local returns the current instant in the clinic time zone.
func (c Clock) Local() time.Time {
	return c.Instant().In(c.loc())
}

// Today returns the clinic-local date as YYYY-MM-DD.
func (c Clock) Today() string {
	return c.Local().Format(model.DateLayout)
}

// LocalTimeOfDay formats t as HH:MM in the clinic time zone.
func (c Clock) LocalTimeOfDay(t time.Time) string {
	return t.In(c.loc()).Format(model.TimeOfDayLayout)
}
