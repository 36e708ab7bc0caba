package scheduling

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// ScheduleResolver answers "when does this staff member work on this date"
// from schedule entries loaded in one round trip.
type ScheduleResolver struct {
	calendar Calendar
	entries  map[int64]map[int]domain.ScheduleEntry
}

// NewScheduleResolver indexes entries by staff and day of week
func NewScheduleResolver(calendar Calendar, entries []domain.ScheduleEntry) *ScheduleResolver {
	index := make(map[int64]map[int]domain.ScheduleEntry)
	for _, e := range entries {
		byDay, ok := index[e.StaffID]
		if !ok {
			byDay = make(map[int]domain.ScheduleEntry, 7)
			index[e.StaffID] = byDay
		}
		byDay[e.DayOfWeek] = e
	}
	return &ScheduleResolver{calendar: calendar, entries: index}
}

// Resolve returns the entry for the staff member on the date's weekday.
// false means the staff member does not work that day.
func (r *ScheduleResolver) Resolve(staffID int64, date time.Time) (domain.ScheduleEntry, bool) {
	entry, ok := r.entries[staffID][r.calendar.DayOfWeek(date)]
	return entry, ok
}

// WorkingHours materialises the resolved entry on the given date
func (r *ScheduleResolver) WorkingHours(staffID int64, date time.Time) (Interval, bool, error) {
	entry, ok := r.Resolve(staffID, date)
	if !ok {
		return Interval{}, false, nil
	}
	return EntryInterval(entry, date)
}

// EntryInterval places a schedule entry on a concrete date
func EntryInterval(entry domain.ScheduleEntry, date time.Time) (Interval, bool, error) {
	day := DateOf(date)
	start, err := entry.StartTime.On(day)
	if err != nil {
		return Interval{}, false, fmt.Errorf("schedule of staff %d: %w", entry.StaffID, err)
	}
	end, err := entry.EndTime.On(day)
	if err != nil {
		return Interval{}, false, fmt.Errorf("schedule of staff %d: %w", entry.StaffID, err)
	}
	if !start.Before(end) {
		return Interval{}, false, nil
	}
	return Interval{Start: start, End: end}, true, nil
}
