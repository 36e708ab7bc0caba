package scheduling

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Roster staff members with everything needed to compute their availability
type Roster struct {
	Staff     []domain.StaffMember
	Schedules *ScheduleResolver
	Bookings  BookingIndex
}

// Aggregator combines per-staff slot sequences into day and window results
type Aggregator struct {
	generator *SlotGenerator
	calendar  Calendar
}

// NewAggregator creates an aggregator
func NewAggregator(generator *SlotGenerator, calendar Calendar) *Aggregator {
	return &Aggregator{generator: generator, calendar: calendar}
}

// Day returns every slot of the date across the roster, in roster order
func (a *Aggregator) Day(date time.Time, service domain.Service, roster Roster, now time.Time) ([]domain.Slot, error) {
	slots := make([]domain.Slot, 0)
	for _, staff := range roster.Staff {
		query, working, err := a.query(date, service, staff, roster, now)
		if err != nil {
			return nil, err
		}
		if !working {
			continue
		}
		for slot := range a.generator.Generate(query) {
			slots = append(slots, slot)
		}
	}
	return slots, nil
}

// Summary counts slots of the date per staff member.
// When nobody works that day the generator is not run at all.
func (a *Aggregator) Summary(date time.Time, service domain.Service, roster Roster, now time.Time) (domain.DaySummary, error) {
	day := DateOf(date)
	dow := a.calendar.DayOfWeek(day)
	summary := domain.DaySummary{
		Date:       day,
		DayOfWeek:  dow,
		DayLabel:   domain.DayLabels[dow],
		StaffSlots: make([]domain.StaffSlotCount, 0),
	}

	queries := make([]SlotQuery, 0, len(roster.Staff))
	for _, staff := range roster.Staff {
		query, working, err := a.query(day, service, staff, roster, now)
		if err != nil {
			return domain.DaySummary{}, err
		}
		if working {
			queries = append(queries, query)
		}
	}
	if len(queries) == 0 {
		return summary, nil
	}

	for _, q := range queries {
		count := a.generator.Count(q)
		if count == 0 {
			continue
		}
		summary.TotalSlots += count
		summary.StaffSlots = append(summary.StaffSlots, domain.StaffSlotCount{
			StaffID:   q.Staff.ID,
			StaffName: q.Staff.Name,
			Count:     count,
		})
	}
	return summary, nil
}

// Window summarises days consecutive dates starting at start
func (a *Aggregator) Window(start time.Time, days int, service domain.Service, roster Roster, now time.Time) ([]domain.DaySummary, error) {
	result := make([]domain.DaySummary, 0, days)
	for i := 0; i < days; i++ {
		summary, err := a.Summary(a.calendar.AddDays(start, i), service, roster, now)
		if err != nil {
			return nil, err
		}
		result = append(result, summary)
	}
	return result, nil
}

func (a *Aggregator) query(date time.Time, service domain.Service, staff domain.StaffMember, roster Roster, now time.Time) (SlotQuery, bool, error) {
	working, ok, err := roster.Schedules.WorkingHours(staff.ID, date)
	if err != nil || !ok {
		return SlotQuery{}, false, err
	}
	return SlotQuery{
		Staff:    staff,
		Working:  working,
		Duration: service.Duration(),
		Booked:   roster.Bookings.ForStaff(staff.ID),
		Now:      now,
	}, true, nil
}
