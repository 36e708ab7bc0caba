package scheduling

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Calendar day arithmetic over naive wall-clock dates.
// All values it produces carry time.UTC as a neutral label, not as a zone.
type Calendar interface {
	DayOfWeek(date time.Time) int
	AddDays(date time.Time, n int) time.Time
	Today() time.Time
	Now() time.Time
}

// WallClock reads the current wall-clock time in the salon's location
type WallClock struct {
	location *time.Location
	now      func() time.Time
}

// NewWallClock creates a calendar reading the system clock in loc
func NewWallClock(loc *time.Location) *WallClock {
	if loc == nil {
		loc = time.Local
	}
	return &WallClock{location: loc, now: time.Now}
}

// NewFixedClock creates a calendar whose Now always returns now
func NewFixedClock(now time.Time) *WallClock {
	return &WallClock{location: now.Location(), now: func() time.Time { return now }}
}

// Now returns the current wall-clock time with the zone dropped
func (c *WallClock) Now() time.Time {
	return Naive(c.now().In(c.location))
}

// Today returns the current wall-clock date at midnight
func (c *WallClock) Today() time.Time {
	return DateOf(c.Now())
}

// DayOfWeek returns 0 for Sunday through 6 for Saturday
func (c *WallClock) DayOfWeek(date time.Time) int {
	return int(date.Weekday())
}

// AddDays shifts a date by n calendar days
func (c *WallClock) AddDays(date time.Time, n int) time.Time {
	return date.AddDate(0, 0, n)
}

// Naive keeps the wall-clock fields of t and relabels it as UTC
func Naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// DateOf truncates a wall-clock instant to its date
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses YYYY-MM-DD into a naive date
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(domain.DateFormat, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD: %v", domain.ErrValidation, err)
	}
	return d, nil
}

var dateTimeLayouts = []string{
	domain.DateTimeFormat,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseDateTime parses a naive ISO-8601 date-time. An RFC 3339 offset is
// accepted and ignored: the wall-clock fields are kept as written.
func ParseDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return Naive(t), nil
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: date-time must be YYYY-MM-DDTHH:MM[:SS], got %q", domain.ErrValidation, s)
}
