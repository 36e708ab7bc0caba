package domain

import "github.com/m04kA/SMC-SalonBooking/pkg/types"

// Scheduling defaults
const (
	GridQuantumMinutes     = 15
	DefaultBufferMinutes   = 15
	DefaultMinAdvanceHours = 2
	DefaultWindowDays      = 8
	MaxWindowDays          = 30
	MaxWindowOffsetDays    = 365
	DefaultUpcomingLimit   = 50
)

// Default working hours for newly created staff
const (
	DefaultWorkdayStart types.TimeString = "09:00"
	DefaultWorkdayEnd   types.TimeString = "18:00"
)

// Input limits
const (
	MinCustomerNameLength  = 2
	MaxCustomerNameLength  = 200
	MaxCustomerPhoneLength = 30
	MinPhoneDigits         = 5
	MinStaffNameLength     = 2
	MaxStaffNameLength     = 100
)

// Time format constants
const (
	TimeFormat     = "15:04"               // HH:MM
	DateFormat     = "2006-01-02"          // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04:05" // naive ISO-8601
)

// DayLabels two-letter weekday labels indexed by time.Weekday
var DayLabels = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
