package get_weekly_availability

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	getWeeklyAvailability "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_weekly_availability"
)

// StaffSlotsResponse количество слотов мастера за день
type StaffSlotsResponse struct {
	StaffID   int64  `json:"staffId"`
	StaffName string `json:"staffName"`
	Count     int    `json:"count"`
}

// DaySummaryResponse сводка за день
type DaySummaryResponse struct {
	Date       string               `json:"date"`
	DayOfWeek  int                  `json:"dayOfWeek"`
	DayLabel   string               `json:"dayLabel"`
	TotalSlots int                  `json:"totalSlots"`
	StaffSlots []StaffSlotsResponse `json:"staffSlots"`
}

// WeeklyAvailabilityResponse HTTP response model
type WeeklyAvailabilityResponse struct {
	ServiceID   int64                `json:"serviceId"`
	ServiceName string               `json:"serviceName"`
	From        string               `json:"from"`
	Days        []DaySummaryResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getWeeklyAvailability.Response) *WeeklyAvailabilityResponse {
	days := make([]DaySummaryResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		staff := make([]StaffSlotsResponse, 0, len(d.StaffSlots))
		for _, s := range d.StaffSlots {
			staff = append(staff, StaffSlotsResponse{StaffID: s.StaffID, StaffName: s.StaffName, Count: s.Count})
		}
		days = append(days, DaySummaryResponse{
			Date:       d.Date.Format(domain.DateFormat),
			DayOfWeek:  d.DayOfWeek,
			DayLabel:   d.DayLabel,
			TotalSlots: d.TotalSlots,
			StaffSlots: staff,
		})
	}

	return &WeeklyAvailabilityResponse{
		ServiceID:   resp.Service.ID,
		ServiceName: resp.Service.Name,
		From:        resp.From.Format(domain.DateFormat),
		Days:        days,
	}
}
