package domain

import "time"

// Slot a bookable start for one staff member
type Slot struct {
	StaffID   int64
	StaffName string
	Start     time.Time
	End       time.Time
}

// StaffSlotCount number of slots one staff member has on a day
type StaffSlotCount struct {
	StaffID   int64
	StaffName string
	Count     int
}

// DaySummary availability of one day in a multi-day window.
// StaffSlots contains only staff members with at least one slot.
type DaySummary struct {
	Date       time.Time
	DayOfWeek  int
	DayLabel   string
	TotalSlots int
	StaffSlots []StaffSlotCount
}
