package domain

import "time"

// Booking a committed appointment of one customer with one staff member.
// StartTime and EndTime are naive wall-clock values of the salon.
type Booking struct {
	ID            int64
	ServiceID     int64
	StaffID       int64
	CustomerName  string
	CustomerPhone string
	StartTime     time.Time
	EndTime       time.Time
	CreatedAt     time.Time
}

// Duration returns the length of the booked interval
func (b *Booking) Duration() time.Duration {
	return b.EndTime.Sub(b.StartTime)
}

// IsUpcoming returns true if the booking starts at or after now
func (b *Booking) IsUpcoming(now time.Time) bool {
	return !b.StartTime.Before(now)
}

// BookingDetails booking joined with the names of its service and staff member
type BookingDetails struct {
	Booking
	ServiceName string
	StaffName   string
}
