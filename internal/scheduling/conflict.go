package scheduling

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// ConflictDetector decides whether a candidate interval collides with
// existing bookings of the same staff member. A candidate conflicts when
// it overlaps a booking widened by the buffer on both sides, so two
// bookings are always separated by at least the buffer.
type ConflictDetector struct {
	buffer time.Duration
}

// NewConflictDetector creates a detector with the given buffer
func NewConflictDetector(buffer time.Duration) ConflictDetector {
	return ConflictDetector{buffer: buffer}
}

// Conflicts reports whether candidate collides with any booked interval
func (d ConflictDetector) Conflicts(candidate Interval, booked []Interval) bool {
	for _, b := range booked {
		if candidate.Overlaps(b.Expand(d.buffer)) {
			return true
		}
	}
	return false
}

// BookingInterval returns the booked interval of b
func BookingInterval(b *domain.Booking) Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}

// BookingIntervals converts bookings to intervals
func BookingIntervals(bookings []*domain.Booking) []Interval {
	out := make([]Interval, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingInterval(b))
	}
	return out
}

// BookingIndex booked intervals grouped by staff member
type BookingIndex map[int64][]Interval

// IndexBookings groups bookings by staff member
func IndexBookings(bookings []*domain.Booking) BookingIndex {
	index := make(BookingIndex)
	for _, b := range bookings {
		index[b.StaffID] = append(index[b.StaffID], BookingInterval(b))
	}
	return index
}

// ForStaff returns booked intervals of one staff member
func (ix BookingIndex) ForStaff(staffID int64) []Interval {
	return ix[staffID]
}
