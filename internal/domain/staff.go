package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// StaffMember a person who performs services
type StaffMember struct {
	ID   int64
	Name string
}

// ScheduleEntry working hours of a staff member on one day of the week.
// DayOfWeek follows time.Weekday numbering: 0 is Sunday.
type ScheduleEntry struct {
	StaffID   int64
	DayOfWeek int
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Validate checks day range, HH:MM format and start < end
func (e *ScheduleEntry) Validate() error {
	if e.DayOfWeek < 0 || e.DayOfWeek > 6 {
		return fmt.Errorf("%w: dayOfWeek must be in 0..6, got %d", ErrValidation, e.DayOfWeek)
	}
	if err := e.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrValidation, err)
	}
	if err := e.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: endTime: %v", ErrValidation, err)
	}
	if !e.StartTime.IsBefore(e.EndTime) {
		return fmt.Errorf("%w: startTime %s must be before endTime %s", ErrValidation, e.StartTime, e.EndTime)
	}
	return nil
}

// DefaultWeekSchedule Monday to Friday, 09:00 to 18:00
func DefaultWeekSchedule(staffID int64) []ScheduleEntry {
	entries := make([]ScheduleEntry, 0, 5)
	for day := time.Monday; day <= time.Friday; day++ {
		entries = append(entries, ScheduleEntry{
			StaffID:   staffID,
			DayOfWeek: int(day),
			StartTime: DefaultWorkdayStart,
			EndTime:   DefaultWorkdayEnd,
		})
	}
	return entries
}
