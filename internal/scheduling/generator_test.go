package scheduling

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

var anna = domain.StaffMember{ID: 1, Name: "Anna"}

// longAgo keeps the advance notice out of the way
var longAgo = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func workday() Interval {
	return Interval{Start: at(9, 0), End: at(18, 0)}
}

func TestSlotGenerator_FullDay(t *testing.T) {
	gen := NewSlotGenerator(domain.DefaultSchedulingPolicy())

	slots := slices.Collect(gen.Generate(SlotQuery{
		Staff:    anna,
		Working:  workday(),
		Duration: 30 * time.Minute,
		Now:      longAgo,
	}))

	require.Len(t, slots, 35)
	assert.Equal(t, at(9, 0), slots[0].Start)
	assert.Equal(t, at(9, 30), slots[0].End)
	assert.Equal(t, at(17, 30), slots[len(slots)-1].Start)
	assert.Equal(t, at(18, 0), slots[len(slots)-1].End)
	assert.Equal(t, "Anna", slots[0].StaffName)

	for i, s := range slots {
		assert.True(t, workday().Contains(Interval{Start: s.Start, End: s.End}), "slot %d outside working hours", i)
		assert.True(t, IsQuantized(s.Start))
	}
}

func TestSlotGenerator_BufferAroundBooking(t *testing.T) {
	gen := NewSlotGenerator(domain.DefaultSchedulingPolicy())

	slots := slices.Collect(gen.Generate(SlotQuery{
		Staff:    anna,
		Working:  workday(),
		Duration: 15 * time.Minute,
		Booked:   []Interval{{Start: at(10, 0), End: at(10, 30)}},
		Now:      longAgo,
	}))

	starts := make(map[time.Time]bool, len(slots))
	for _, s := range slots {
		starts[s.Start] = true
	}

	assert.True(t, starts[at(9, 30)])
	assert.False(t, starts[at(9, 45)])
	assert.False(t, starts[at(10, 0)])
	assert.False(t, starts[at(10, 15)])
	assert.False(t, starts[at(10, 30)])
	assert.True(t, starts[at(10, 45)])
}

func TestSlotGenerator_NeverReturnsBufferedConflicts(t *testing.T) {
	policy := domain.DefaultSchedulingPolicy()
	gen := NewSlotGenerator(policy)
	booked := []Interval{
		{Start: at(9, 30), End: at(10, 15)},
		{Start: at(12, 0), End: at(13, 30)},
		{Start: at(16, 45), End: at(17, 0)},
	}

	for _, minutes := range []int{15, 30, 45, 60, 90} {
		duration := time.Duration(minutes) * time.Minute
		for slot := range gen.Generate(SlotQuery{Staff: anna, Working: workday(), Duration: duration, Booked: booked, Now: longAgo}) {
			candidate := Interval{Start: slot.Start, End: slot.End}
			for _, b := range booked {
				assert.False(t, candidate.Overlaps(b.Expand(policy.Buffer())),
					"slot %s (%d min) collides with booking %s", slot.Start.Format(domain.TimeFormat), minutes, b.Start.Format(domain.TimeFormat))
			}
		}
	}
}

func TestSlotGenerator_ExactWindow(t *testing.T) {
	gen := NewSlotGenerator(domain.DefaultSchedulingPolicy())

	slots := slices.Collect(gen.Generate(SlotQuery{
		Staff:    anna,
		Working:  Interval{Start: at(9, 0), End: at(10, 0)},
		Duration: time.Hour,
		Now:      longAgo,
	}))

	require.Len(t, slots, 1)
	assert.Equal(t, at(9, 0), slots[0].Start)
}

func TestSlotGenerator_WindowShorterThanDuration(t *testing.T) {
	gen := NewSlotGenerator(domain.DefaultSchedulingPolicy())

	count := gen.Count(SlotQuery{
		Staff:    anna,
		Working:  Interval{Start: at(9, 0), End: at(9, 45)},
		Duration: time.Hour,
		Now:      longAgo,
	})

	assert.Zero(t, count)
}

func TestSlotGenerator_AdvanceNotice(t *testing.T) {
	gen := NewSlotGenerator(domain.DefaultSchedulingPolicy())

	slots := slices.Collect(gen.Generate(SlotQuery{
		Staff:    anna,
		Working:  workday(),
		Duration: 30 * time.Minute,
		Now:      at(10, 5),
	}))

	require.NotEmpty(t, slots)
	assert.Equal(t, at(12, 15), slots[0].Start)
}

func TestSlotGenerator_UnalignedWorkingStart(t *testing.T) {
	gen := NewSlotGenerator(domain.DefaultSchedulingPolicy())

	slots := slices.Collect(gen.Generate(SlotQuery{
		Staff:    anna,
		Working:  Interval{Start: at(9, 10), End: at(10, 0)},
		Duration: 15 * time.Minute,
		Now:      longAgo,
	}))

	require.Len(t, slots, 3)
	assert.Equal(t, at(9, 15), slots[0].Start)
}

func TestSlotGenerator_ZeroDuration(t *testing.T) {
	gen := NewSlotGenerator(domain.DefaultSchedulingPolicy())

	assert.Zero(t, gen.Count(SlotQuery{Staff: anna, Working: workday(), Now: longAgo}))
}

func TestSlotGenerator_LazyAndRestartable(t *testing.T) {
	gen := NewSlotGenerator(domain.DefaultSchedulingPolicy())
	seq := gen.Generate(SlotQuery{Staff: anna, Working: workday(), Duration: 30 * time.Minute, Now: longAgo})

	var first []domain.Slot
	for s := range seq {
		first = append(first, s)
		if len(first) == 2 {
			break
		}
	}
	assert.Len(t, first, 2)

	all := slices.Collect(seq)
	assert.Len(t, all, 35)
	assert.Equal(t, first, all[:2])
	assert.Equal(t, all, slices.Collect(seq))
}
