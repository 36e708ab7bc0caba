package scheduling

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Quantum step of the booking grid
const Quantum = domain.GridQuantumMinutes * time.Minute

// IsQuantized reports whether t lies on the 15 minute grid with zero seconds
func IsQuantized(t time.Time) bool {
	return t.Second() == 0 && t.Nanosecond() == 0 && t.Minute()%domain.GridQuantumMinutes == 0
}

// CeilToQuantum returns the first grid point at or after t
func CeilToQuantum(t time.Time) time.Time {
	if IsQuantized(t) {
		return t
	}
	base := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	steps := t.Sub(base)/Quantum + 1
	return base.Add(steps * Quantum)
}

// Interval half-open time range [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval builds [start, start+d)
func NewInterval(start time.Time, d time.Duration) Interval {
	return Interval{Start: start, End: start.Add(d)}
}

// Duration returns End - Start
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps reports whether two half-open intervals share any instant.
// Touching intervals do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && i.End.After(o.Start)
}

// Expand widens the interval by d on both sides
func (i Interval) Expand(d time.Duration) Interval {
	return Interval{Start: i.Start.Add(-d), End: i.End.Add(d)}
}

// Contains reports whether o lies entirely within i
func (i Interval) Contains(o Interval) bool {
	return !o.Start.Before(i.Start) && !o.End.After(i.End)
}
