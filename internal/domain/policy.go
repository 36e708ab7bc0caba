package domain

import "time"

// SchedulingPolicy rules shared by availability and booking commit
type SchedulingPolicy struct {
	// BufferMinutes minimum idle gap between two bookings of one staff member
	BufferMinutes int
	// MinAdvanceHours how far ahead of now the earliest bookable start is
	MinAdvanceHours int
}

// DefaultSchedulingPolicy 15 minute buffer, 2 hours advance notice
func DefaultSchedulingPolicy() SchedulingPolicy {
	return SchedulingPolicy{
		BufferMinutes:   DefaultBufferMinutes,
		MinAdvanceHours: DefaultMinAdvanceHours,
	}
}

// Buffer returns BufferMinutes as a duration
func (p SchedulingPolicy) Buffer() time.Duration {
	return time.Duration(p.BufferMinutes) * time.Minute
}

// MinAdvance returns MinAdvanceHours as a duration
func (p SchedulingPolicy) MinAdvance() time.Duration {
	return time.Duration(p.MinAdvanceHours) * time.Hour
}

// EarliestStart returns the earliest bookable start for the given wall-clock now
func (p SchedulingPolicy) EarliestStart(now time.Time) time.Time {
	return now.Add(p.MinAdvance())
}
