package scheduling

import (
	"iter"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// SlotGenerator enumerates bookable starts for one staff member on one date
type SlotGenerator struct {
	policy   domain.SchedulingPolicy
	detector ConflictDetector
}

// NewSlotGenerator creates a generator for the policy
func NewSlotGenerator(policy domain.SchedulingPolicy) *SlotGenerator {
	return &SlotGenerator{
		policy:   policy,
		detector: NewConflictDetector(policy.Buffer()),
	}
}

// SlotQuery input of one generation run
type SlotQuery struct {
	Staff    domain.StaffMember
	Working  Interval
	Duration time.Duration
	Booked   []Interval
	Now      time.Time
}

// Generate walks the working interval in grid steps and yields every start
// at or after the earliest bookable time whose interval fits the working
// hours without conflicting with booked intervals. The sequence is lazy.
func (g *SlotGenerator) Generate(q SlotQuery) iter.Seq[domain.Slot] {
	return func(yield func(domain.Slot) bool) {
		if q.Duration <= 0 {
			return
		}
		earliest := g.policy.EarliestStart(q.Now)

		for start := CeilToQuantum(q.Working.Start); !start.Add(q.Duration).After(q.Working.End); start = start.Add(Quantum) {
			if start.Before(earliest) {
				continue
			}
			candidate := NewInterval(start, q.Duration)
			if g.detector.Conflicts(candidate, q.Booked) {
				continue
			}
			slot := domain.Slot{
				StaffID:   q.Staff.ID,
				StaffName: q.Staff.Name,
				Start:     candidate.Start,
				End:       candidate.End,
			}
			if !yield(slot) {
				return
			}
		}
	}
}

// Count returns the number of slots Generate would yield
func (g *SlotGenerator) Count(q SlotQuery) int {
	n := 0
	for range g.Generate(q) {
		n++
	}
	return n
}
