package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

func TestConflictDetector_Buffer(t *testing.T) {
	detector := NewConflictDetector(15 * time.Minute)
	booked := []Interval{{Start: at(10, 0), End: at(10, 30)}}

	tests := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{name: "ends a full buffer before", start: at(9, 30), want: false},
		{name: "ends inside buffer", start: at(9, 45), want: true},
		{name: "overlaps booking", start: at(10, 15), want: true},
		{name: "starts at booking end", start: at(10, 30), want: true},
		{name: "starts a full buffer after", start: at(10, 45), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := NewInterval(tt.start, 15*time.Minute)
			assert.Equal(t, tt.want, detector.Conflicts(candidate, booked))
		})
	}
}

func TestConflictDetector_ZeroBuffer(t *testing.T) {
	detector := NewConflictDetector(0)
	booked := []Interval{{Start: at(10, 0), End: at(10, 30)}}

	assert.False(t, detector.Conflicts(NewInterval(at(10, 30), 30*time.Minute), booked))
	assert.False(t, detector.Conflicts(NewInterval(at(9, 30), 30*time.Minute), booked))
	assert.True(t, detector.Conflicts(NewInterval(at(10, 15), 30*time.Minute), booked))
	assert.False(t, detector.Conflicts(NewInterval(at(10, 15), 30*time.Minute), nil))
}

func TestIndexBookings(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, StaffID: 1, StartTime: at(10, 0), EndTime: at(10, 30)},
		{ID: 2, StaffID: 2, StartTime: at(11, 0), EndTime: at(12, 0)},
		{ID: 3, StaffID: 1, StartTime: at(14, 0), EndTime: at(14, 45)},
	}

	index := IndexBookings(bookings)

	assert.Len(t, index.ForStaff(1), 2)
	assert.Equal(t, Interval{Start: at(11, 0), End: at(12, 0)}, index.ForStaff(2)[0])
	assert.Empty(t, index.ForStaff(3))
	assert.Len(t, BookingIntervals(bookings), 3)
}
